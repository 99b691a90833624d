package cpu

import "fmt"

// Execute applies a decoded instruction to the CPU.
func (c *CPU) Execute(instr Instruction) {
	switch i := instr.(type) {
	case Nop:
	case Stop:
		c.Stop()
	case Halt:
		c.Halt()
	case EnableInterrupts:
		c.EnableInterrupts()
	case DisableInterrupts:
		c.DisableInterrupts()

	case JumpRelative:
		c.JumpRelative(i.Cond, i.Offset)
	case Jump:
		c.Jump(i.Cond, i.Address)
	case JumpHL:
		c.JumpHL()
	case Call:
		c.Call(i.Cond, i.Address)
	case Return:
		c.Return(i.Cond)
	case ReturnInterrupt:
		c.ReturnInterrupt()
	case Restart:
		c.Restart(i.Vector)
	case Push:
		c.Push(i.Source)
	case Pop:
		c.Pop(i.Target)

	case Load8:
		c.Load8(i.Target, i.Source)
	case Load16:
		c.Load16(i.Target, i.Source)
	case LoadHigh:
		c.LoadHigh(i.Target, i.Source)
	case LoadIncrement:
		c.LoadIncrement(i.Target, i.Source)
	case LoadDecrement:
		c.LoadDecrement(i.Target, i.Source)
	case LoadHLSP:
		c.LoadHLSP(i.Offset)

	case Increment8:
		c.Increment8(i.Target)
	case Decrement8:
		c.Decrement8(i.Target)
	case Increment16:
		c.Increment16(i.Target)
	case Decrement16:
		c.Decrement16(i.Target)

	case Add8:
		c.Add8(i.Source)
	case AddCarry:
		c.AddCarry(i.Source)
	case Sub:
		c.Sub(i.Source)
	case SubCarry:
		c.SubCarry(i.Source)
	case And:
		c.And(i.Source)
	case Xor:
		c.Xor(i.Source)
	case Or:
		c.Or(i.Source)
	case Compare:
		c.Compare(i.Source)
	case Add16:
		c.Add16(i.Source)
	case AddSP:
		c.AddSP(i.Offset)

	case DecimalAdjust:
		c.DecimalAdjust()
	case Complement:
		c.Complement()
	case SetCarryFlag:
		c.SetCarryFlag()
	case ComplementCarryFlag:
		c.ComplementCarryFlag()

	case RotateLeftA:
		c.RotateLeftA()
	case RotateLeftCarryA:
		c.RotateLeftCarryA()
	case RotateRightA:
		c.RotateRightA()
	case RotateRightCarryA:
		c.RotateRightCarryA()

	case RotateLeft:
		c.RotateLeft(i.Target)
	case RotateRight:
		c.RotateRight(i.Target)
	case RotateLeftCarry:
		c.RotateLeftCarry(i.Target)
	case RotateRightCarry:
		c.RotateRightCarry(i.Target)
	case ShiftLeft:
		c.ShiftLeft(i.Target)
	case ShiftRightArithmetic:
		c.ShiftRightArithmetic(i.Target)
	case ShiftRightLogical:
		c.ShiftRightLogical(i.Target)
	case Swap:
		c.Swap(i.Target)
	case BitCheckZero:
		c.BitCheckZero(i.Bit, i.Target)
	case BitSet:
		c.BitSet(i.Bit, i.Target)
	case BitReset:
		c.BitReset(i.Bit, i.Target)

	default:
		panic(fmt.Sprintf("cpu: unhandled instruction %T", instr))
	}
}
