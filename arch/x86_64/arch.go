package x86_64

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
	"rip": uc.X86_REG_RIP,
	"rsp": uc.X86_REG_RSP,
	"rbp": uc.X86_REG_RBP,
	"rax": uc.X86_REG_RAX,
	"rbx": uc.X86_REG_RBX,
	"rcx": uc.X86_REG_RCX,
	"rdx": uc.X86_REG_RDX,
	"rsi": uc.X86_REG_RSI,
	"rdi": uc.X86_REG_RDI,
	"r8":  uc.X86_REG_R8,
	"r9":  uc.X86_REG_R9,
	"r10": uc.X86_REG_R10,
	"r11": uc.X86_REG_R11,
	"r12": uc.X86_REG_R12,
	"r13": uc.X86_REG_R13,
	"r14": uc.X86_REG_R14,
	"r15": uc.X86_REG_R15,

	"eflags": uc.X86_REG_EFLAGS,

	"cs": uc.X86_REG_CS,
	"ds": uc.X86_REG_DS,
	"es": uc.X86_REG_ES,
	"fs": uc.X86_REG_FS,
	"gs": uc.X86_REG_GS,
	"ss": uc.X86_REG_SS,

	"fs_base": uc.X86_REG_FS_BASE,
	"gs_base": uc.X86_REG_GS_BASE,
}

var defaultRegs = []string{
	"rax", "rbx", "rcx", "rdx", "rsi", "rdi", "rbp",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

var Arch = &models.Arch{
	Name: "x86_64",
	Bits: 64,

	Cpu: &unicorn.Builder{Arch: uc.ARCH_X86, Mode: uc.MODE_64},
	Dis: &cpu.Capstr{Arch: cs.ARCH_X86, Mode: cs.MODE_64},
	Asm: &cpu.Keystone{Arch: ks.ARCH_X86, Mode: ks.MODE_64},

	PC:          uc.X86_REG_RIP,
	SP:          uc.X86_REG_RSP,
	Regs:        regs,
	DefaultRegs: defaultRegs,
}

var ArchATT = &models.Arch{
	Name: "x86_64:att",
	Bits: 64,

	Cpu: &unicorn.Builder{Arch: uc.ARCH_X86, Mode: uc.MODE_64},
	Dis: &cpu.Capstone{Arch: gs.CS_ARCH_X86, Mode: gs.CS_MODE_64, Syntax: gs.CS_OPT_SYNTAX_ATT},
	Asm: &cpu.Keystone{Arch: ks.ARCH_X86, Mode: ks.MODE_64, Syntax: ks.OPT_SYNTAX_ATT},

	PC:          uc.X86_REG_RIP,
	SP:          uc.X86_REG_RSP,
	Regs:        regs,
	DefaultRegs: defaultRegs,
}
