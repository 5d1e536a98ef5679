package x86

import (
	gs "github.com/bnagy/gapstone"
	ks "github.com/keystone-engine/keystone/bindings/go/keystone"
	cs "github.com/lunixbochs/capstr"
	uc "github.com/unicorn-engine/unicorn/bindings/go/unicorn"

	"github.com/emustep/emustep/cpu"
	"github.com/emustep/emustep/cpu/unicorn"
	"github.com/emustep/emustep/models"
)

var regs = map[string]int{
	"eip": uc.X86_REG_EIP,
	"esp": uc.X86_REG_ESP,
	"ebp": uc.X86_REG_EBP,
	"eax": uc.X86_REG_EAX,
	"ebx": uc.X86_REG_EBX,
	"ecx": uc.X86_REG_ECX,
	"edx": uc.X86_REG_EDX,
	"esi": uc.X86_REG_ESI,
	"edi": uc.X86_REG_EDI,

	"eflags": uc.X86_REG_EFLAGS,

	"cs": uc.X86_REG_CS,
	"ds": uc.X86_REG_DS,
	"es": uc.X86_REG_ES,
	"fs": uc.X86_REG_FS,
	"gs": uc.X86_REG_GS,
	"ss": uc.X86_REG_SS,
}

var defaultRegs = []string{
	"eax", "ebx", "ecx", "edx", "esi", "edi", "ebp",
}

var Arch = &models.Arch{
	Name: "x86",
	Bits: 32,

	Cpu: &unicorn.Builder{Arch: uc.ARCH_X86, Mode: uc.MODE_32},
	Dis: &cpu.Capstr{Arch: cs.ARCH_X86, Mode: cs.MODE_32},
	Asm: &cpu.Keystone{Arch: ks.ARCH_X86, Mode: ks.MODE_32},

	PC:          uc.X86_REG_EIP,
	SP:          uc.X86_REG_ESP,
	Regs:        regs,
	DefaultRegs: defaultRegs,
}

// ArchATT is the same machine with the ATT assembler/disassembler dialect.
var ArchATT = &models.Arch{
	Name: "x86:att",
	Bits: 32,

	Cpu: &unicorn.Builder{Arch: uc.ARCH_X86, Mode: uc.MODE_32},
	Dis: &cpu.Capstone{Arch: gs.CS_ARCH_X86, Mode: gs.CS_MODE_32, Syntax: gs.CS_OPT_SYNTAX_ATT},
	Asm: &cpu.Keystone{Arch: ks.ARCH_X86, Mode: ks.MODE_32, Syntax: ks.OPT_SYNTAX_ATT},

	PC:          uc.X86_REG_EIP,
	SP:          uc.X86_REG_ESP,
	Regs:        regs,
	DefaultRegs: defaultRegs,
}
