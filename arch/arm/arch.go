package arm

import (
	gs "github.com/bnagy/gapstone"
	ks "github.com/keystone-engine/keystone/bindings/go/keystone"
	uc "github.com/unicorn-engine/unicorn/bindings/go/unicorn"

	"github.com/emustep/emustep/cpu"
	"github.com/emustep/emustep/cpu/unicorn"
	"github.com/emustep/emustep/models"
)

var regs = map[string]int{
	"r0":  uc.ARM_REG_R0,
	"r1":  uc.ARM_REG_R1,
	"r2":  uc.ARM_REG_R2,
	"r3":  uc.ARM_REG_R3,
	"r4":  uc.ARM_REG_R4,
	"r5":  uc.ARM_REG_R5,
	"r6":  uc.ARM_REG_R6,
	"r7":  uc.ARM_REG_R7,
	"r8":  uc.ARM_REG_R8,
	"r9":  uc.ARM_REG_R9,
	"r10": uc.ARM_REG_R10,
	"r11": uc.ARM_REG_R11,
	"r12": uc.ARM_REG_R12,
	"lr":  uc.ARM_REG_LR,
	"sp":  uc.ARM_REG_SP,
	"pc":  uc.ARM_REG_PC,

	"cpsr": uc.ARM_REG_CPSR,
}

var defaultRegs = []string{
	"r0", "r1", "r2", "r3", "r4", "r5", "r6",
	"r7", "r8", "r9", "r10", "r11", "r12", "lr",
}

// makeArch builds one of the four arm flavors. The uc/cs/ks mode flags
// have to agree on endianness and thumb state or the disassembly won't
// match what the cpu executes.
func makeArch(name string, ucMode, csMode int, ksMode ks.Mode) *models.Arch {
	return &models.Arch{
		Name: name,
		Bits: 32,

		Cpu: &unicorn.Builder{Arch: uc.ARCH_ARM, Mode: ucMode},
		Dis: &cpu.Capstone{Arch: gs.CS_ARCH_ARM, Mode: csMode},
		Asm: &cpu.Keystone{Arch: ks.ARCH_ARM, Mode: ksMode},

		PC:          uc.ARM_REG_PC,
		SP:          uc.ARM_REG_SP,
		Regs:        regs,
		DefaultRegs: defaultRegs,
	}
}

var (
	Arch   = makeArch("arm", uc.MODE_ARM, gs.CS_MODE_ARM, ks.MODE_ARM)
	ArchBE = makeArch("armbe",
		uc.MODE_ARM|uc.MODE_BIG_ENDIAN,
		gs.CS_MODE_ARM|gs.CS_MODE_BIG_ENDIAN,
		ks.MODE_ARM|ks.MODE_BIG_ENDIAN)
	ArchThumb = makeArch("thumb", uc.MODE_THUMB, gs.CS_MODE_THUMB, ks.MODE_THUMB)
	ArchThumbBE = makeArch("thumbbe",
		uc.MODE_THUMB|uc.MODE_BIG_ENDIAN,
		gs.CS_MODE_THUMB|gs.CS_MODE_BIG_ENDIAN,
		ks.MODE_THUMB|ks.MODE_BIG_ENDIAN)
)
