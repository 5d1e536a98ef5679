package ppc

import (
	gs "github.com/bnagy/gapstone"
	ks "github.com/keystone-engine/keystone/bindings/go/keystone"
	uc "github.com/unicorn-engine/unicorn/bindings/go/unicorn"

	"github.com/emustep/emustep/cpu"
	"github.com/emustep/emustep/cpu/unicorn"
	"github.com/emustep/emustep/models"
)

var regs = map[string]int{
	"r0":  uc.PPC_REG_0,
	"r1":  uc.PPC_REG_1,
	"r2":  uc.PPC_REG_2,
	"r3":  uc.PPC_REG_3,
	"r4":  uc.PPC_REG_4,
	"r5":  uc.PPC_REG_5,
	"r6":  uc.PPC_REG_6,
	"r7":  uc.PPC_REG_7,
	"r8":  uc.PPC_REG_8,
	"r9":  uc.PPC_REG_9,
	"r10": uc.PPC_REG_10,
	"r11": uc.PPC_REG_11,
	"r12": uc.PPC_REG_12,
	"r13": uc.PPC_REG_13,
	"r14": uc.PPC_REG_14,
	"r15": uc.PPC_REG_15,
	"r16": uc.PPC_REG_16,
	"r17": uc.PPC_REG_17,
	"r18": uc.PPC_REG_18,
	"r19": uc.PPC_REG_19,
	"r20": uc.PPC_REG_20,
	"r21": uc.PPC_REG_21,
	"r22": uc.PPC_REG_22,
	"r23": uc.PPC_REG_23,
	"r24": uc.PPC_REG_24,
	"r25": uc.PPC_REG_25,
	"r26": uc.PPC_REG_26,
	"r27": uc.PPC_REG_27,
	"r28": uc.PPC_REG_28,
	"r29": uc.PPC_REG_29,
	"r30": uc.PPC_REG_30,
	"r31": uc.PPC_REG_31,

	"pc": uc.PPC_REG_PC,
	// r1 doubles as the stack pointer under the ppc ABI
	"sp": uc.PPC_REG_1,
}

var defaultRegs = []string{
	"r0", "r2", "r3", "r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
	"r16", "r17", "r18", "r19", "r20", "r21", "r22", "r23",
	"r24", "r25", "r26", "r27", "r28", "r29", "r30", "r31",
}

var Arch = &models.Arch{
	Name: "ppc",
	Bits: 32,

	Cpu: &unicorn.Builder{Arch: uc.ARCH_PPC, Mode: uc.MODE_PPC32 | uc.MODE_BIG_ENDIAN},
	Dis: &cpu.Capstone{Arch: gs.CS_ARCH_PPC, Mode: gs.CS_MODE_32 | gs.CS_MODE_BIG_ENDIAN},
	Asm: &cpu.Keystone{Arch: ks.ARCH_PPC, Mode: ks.MODE_PPC32 | ks.MODE_BIG_ENDIAN},

	PC:          uc.PPC_REG_PC,
	SP:          uc.PPC_REG_1,
	Regs:        regs,
	DefaultRegs: defaultRegs,
}
