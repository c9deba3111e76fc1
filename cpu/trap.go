package cpu

import (
	"errors"
	"log"
)

// trap dispatches one of the built-in I/O service routines. A vector
// outside the defined set has no effect. The HALT routine reports
// halted to the caller; it does not touch machine state.
func (cpu *Cpu) trap(vec TrapVector) (halted bool, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrTrap(vec), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("trap: %v", vec)
	}

	switch vec {
	case TRAP_GETC:
		var key byte
		key, err = cpu.readKey()
		if err != nil {
			return
		}
		cpu.Reg[R0] = uint16(key)

	case TRAP_OUT:
		err = cpu.putBytes(byte(cpu.Reg[R0]))
		if err != nil {
			return
		}
		err = cpu.Display.Flush()

	case TRAP_PUTS:
		if cpu.Display == nil {
			err = ErrNoDisplay
			return
		}
		for word := range cpu.Mem.Scan(cpu.Reg[R0]) {
			err = cpu.putBytes(byte(word))
			if err != nil {
				return
			}
		}
		err = cpu.Display.Flush()

	case TRAP_IN:
		err = cpu.putBytes([]byte("Enter a character: ")...)
		if err != nil {
			return
		}
		err = cpu.Display.Flush()
		if err != nil {
			return
		}
		var key byte
		key, err = cpu.readKey()
		if err != nil {
			return
		}
		err = cpu.putBytes(key)
		if err != nil {
			return
		}
		err = cpu.Display.Flush()
		if err != nil {
			return
		}
		cpu.Reg[R0] = uint16(key)

	case TRAP_PUTSP:
		if cpu.Display == nil {
			err = ErrNoDisplay
			return
		}
		// Two packed characters per word, low byte first; a zero high
		// byte ends the word early.
		for word := range cpu.Mem.Scan(cpu.Reg[R0]) {
			err = cpu.putBytes(byte(word))
			if err != nil {
				return
			}
			if hi := byte(word >> 8); hi != 0 {
				err = cpu.putBytes(hi)
				if err != nil {
					return
				}
			}
		}
		err = cpu.Display.Flush()

	case TRAP_HALT:
		err = cpu.putBytes([]byte("HALT\n")...)
		if err != nil {
			return
		}
		err = cpu.Display.Flush()
		if err != nil {
			return
		}
		halted = true
	}

	return
}

func (cpu *Cpu) readKey() (key byte, err error) {
	if cpu.Keyboard == nil {
		err = ErrNoKeyboard
		return
	}

	return cpu.Keyboard.Read()
}

func (cpu *Cpu) putBytes(data ...byte) (err error) {
	if cpu.Display == nil {
		err = ErrNoDisplay
		return
	}

	_, err = cpu.Display.Write(data)

	return
}
