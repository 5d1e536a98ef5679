package mips64

import (
	gs "github.com/bnagy/gapstone"
	ks "github.com/keystone-engine/keystone/bindings/go/keystone"
	uc "github.com/unicorn-engine/unicorn/bindings/go/unicorn"

	"github.com/emustep/emustep/cpu"
	"github.com/emustep/emustep/cpu/unicorn"
	"github.com/emustep/emustep/models"
)

// same GPR file as mips32, just 64 bits wide
var regs = map[string]int{
	"at": uc.MIPS_REG_AT,
	"v0": uc.MIPS_REG_V0,
	"v1": uc.MIPS_REG_V1,
	"a0": uc.MIPS_REG_A0,
	"a1": uc.MIPS_REG_A1,
	"a2": uc.MIPS_REG_A2,
	"a3": uc.MIPS_REG_A3,
	"t0": uc.MIPS_REG_T0,
	"t1": uc.MIPS_REG_T1,
	"t2": uc.MIPS_REG_T2,
	"t3": uc.MIPS_REG_T3,
	"t4": uc.MIPS_REG_T4,
	"t5": uc.MIPS_REG_T5,
	"t6": uc.MIPS_REG_T6,
	"t7": uc.MIPS_REG_T7,
	"t8": uc.MIPS_REG_T8,
	"t9": uc.MIPS_REG_T9,
	"s0": uc.MIPS_REG_S0,
	"s1": uc.MIPS_REG_S1,
	"s2": uc.MIPS_REG_S2,
	"s3": uc.MIPS_REG_S3,
	"s4": uc.MIPS_REG_S4,
	"s5": uc.MIPS_REG_S5,
	"s6": uc.MIPS_REG_S6,
	"s7": uc.MIPS_REG_S7,
	"s8": uc.MIPS_REG_S8,
	"k0": uc.MIPS_REG_K0,
	"k1": uc.MIPS_REG_K1,
	"gp": uc.MIPS_REG_GP,
	"sp": uc.MIPS_REG_SP,
	"ra": uc.MIPS_REG_RA,
	"pc": uc.MIPS_REG_PC,
}

var defaultRegs = []string{
	"at",
	"v0", "v1",
	"a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8",
	"k0", "k1",
	"gp",
}

var Arch = &models.Arch{
	Name: "mips64",
	Bits: 64,

	Cpu: &unicorn.Builder{Arch: uc.ARCH_MIPS, Mode: uc.MODE_MIPS64 | uc.MODE_LITTLE_ENDIAN},
	Dis: &cpu.Capstone{Arch: gs.CS_ARCH_MIPS, Mode: gs.CS_MODE_MIPS64 | gs.CS_MODE_LITTLE_ENDIAN},
	Asm: &cpu.Keystone{Arch: ks.ARCH_MIPS, Mode: ks.MODE_MIPS64 | ks.MODE_LITTLE_ENDIAN},

	PC:          uc.MIPS_REG_PC,
	SP:          uc.MIPS_REG_SP,
	Regs:        regs,
	DefaultRegs: defaultRegs,
}

var ArchBE = &models.Arch{
	Name: "mips64be",
	Bits: 64,

	Cpu: &unicorn.Builder{Arch: uc.ARCH_MIPS, Mode: uc.MODE_MIPS64 | uc.MODE_BIG_ENDIAN},
	Dis: &cpu.Capstone{Arch: gs.CS_ARCH_MIPS, Mode: gs.CS_MODE_MIPS64 | gs.CS_MODE_BIG_ENDIAN},
	Asm: &cpu.Keystone{Arch: ks.ARCH_MIPS, Mode: ks.MODE_MIPS64 | ks.MODE_BIG_ENDIAN},

	PC:          uc.MIPS_REG_PC,
	SP:          uc.MIPS_REG_SP,
	Regs:        regs,
	DefaultRegs: defaultRegs,
}
