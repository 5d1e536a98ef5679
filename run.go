package emustep

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/emustep/emustep/models"
	"github.com/emustep/emustep/models/cpu"
)

// addHooks installs the block, code, interrupt and memory-access hooks
// across the whole address space. This happens right after backend
// creation so no instruction ever executes unobserved.
func (e *Emulator) addHooks() error {
	add := func(htype int, cb interface{}) error {
		hh, err := e.cpu.HookAdd(htype, cb, 1, 0)
		if err != nil {
			return errors.Wrap(err, "HookAdd() failed")
		}
		e.hooks = append(e.hooks, hh)
		return nil
	}
	if err := add(cpu.HOOK_BLOCK, func(_ cpu.Cpu, addr uint64, size uint32) {
		e.ui.Log(fmt.Sprintf(">>> Entering new block at 0x%x", addr))
	}); err != nil {
		return err
	}
	if err := add(cpu.HOOK_CODE, e.hookCode); err != nil {
		return err
	}
	if err := add(cpu.HOOK_INTR, func(_ cpu.Cpu, intno uint32) {
		e.ui.Log(fmt.Sprintf(">>> Triggering interrupt #%d", intno))
	}); err != nil {
		return err
	}
	return add(cpu.HOOK_MEM_READ|cpu.HOOK_MEM_WRITE,
		func(_ cpu.Cpu, access int, addr uint64, size int, val int64) {
			if access == cpu.MEM_FETCH {
				// instruction fetch, narrated by the code hook already
				return
			}
			if access == cpu.MEM_WRITE {
				e.ui.Log(fmt.Sprintf(">>> MEM_WRITE : *%#x = %#x (size = %d)", addr, val, size))
			} else {
				e.ui.Log(fmt.Sprintf(">>> MEM_READ : *%#x (size = %d)", addr, size))
			}
		})
}

// hookCode runs at every instruction boundary. A pending stop request
// is consumed here: the current pc becomes the resume point and the
// backend halts before the instruction executes.
func (e *Emulator) hookCode(c cpu.Cpu, addr uint64, size uint32) {
	if e.stopNow {
		e.stopNow = false
		if pc, err := c.RegRead(e.arch.PC); err == nil {
			e.start = pc
		}
		c.Stop()
		return
	}

	e.ui.Log(fmt.Sprintf(">> Executing instruction at 0x%x", addr))
	line := fmt.Sprintf(">>> 0x%x: ?", addr)
	mem := make([]byte, size)
	if err := c.MemReadInto(mem, addr); err == nil {
		if dis, err := e.arch.Dis.Dis(mem, addr); err == nil && len(dis) > 0 {
			ins := dis[0]
			line = fmt.Sprintf(">>> 0x%x: %s %s", ins.Addr(), ins.Mnemonic(), ins.OpStr())
		}
	}
	e.ui.Trace(line)

	if e.stepping {
		// exactly one instruction per run while stepping
		e.stopNow = true
	}
}

// runnable reports whether a run or step may begin.
func (e *Emulator) runnable() error {
	if e.cpu == nil {
		return models.ErrNotMapped
	}
	switch e.status {
	case StatusFinished:
		return models.ErrFinished
	case StatusStopped:
		return models.ErrNotMapped
	}
	if _, ok := e.regionMap[".text"]; !ok {
		return models.ErrMissingTextRegion
	}
	return nil
}

// Run executes from the start address until the end address, a stop
// request or a backend fault. It blocks the caller; hooks fire on the
// same goroutine, in program order. On a fault the backend is stopped
// cleanly and the session is left inspectable for reset.
func (e *Emulator) Run() error {
	if err := e.runnable(); err != nil {
		return err
	}
	e.status = StatusRunning
	if err := e.cpu.Start(e.start, e.end); err != nil {
		e.cpu.Stop()
		e.status = StatusFaulted
		e.ui.Log("An error occurred during emulation")
		return errors.Wrapf(models.ErrFault, "%v", err)
	}

	pc, err := e.cpu.RegRead(e.arch.PC)
	if err != nil {
		e.status = StatusMapped
		return err
	}
	if pc == e.end {
		e.status = StatusFinished
		e.ui.Trace(">>> End of emulation")
		e.ui.OnFinished()
	} else {
		// halted at a step boundary; resumable from the captured pc
		e.status = StatusMapped
	}
	return nil
}

// Step runs exactly one instruction and halts with the start address
// updated to the next pc, so a later Run or Step resumes correctly.
func (e *Emulator) Step() error {
	if err := e.runnable(); err != nil {
		return err
	}
	e.stepping = true
	defer func() {
		e.stepping = false
		e.stopNow = false
	}()
	return e.Run()
}

// Stop unmaps every region and releases the backend instance. It is
// idempotent and safe on a partially initialized session.
func (e *Emulator) Stop() error {
	if e.cpu == nil {
		return nil
	}
	e.cpu.Stop()
	e.unmapAll()
	e.cpu.Close()
	e.cpu = nil
	e.status = StatusStopped
	return nil
}

// Reset tears the current session down and builds a fresh backend with
// hooks installed, returning the session to the ready state. Valid
// from any state.
func (e *Emulator) Reset() error {
	if e.cpu != nil {
		e.cpu.Stop()
		e.unmapAll()
		e.cpu.Close()
		e.cpu = nil
	} else {
		e.unmapAll()
	}
	e.code = nil
	e.insns = -1
	e.start, e.end = 0, EndUnbounded
	e.stepping, e.stopNow = false, false
	return e.createVM()
}
