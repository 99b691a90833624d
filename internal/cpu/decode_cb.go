package cpu

// decodeCB decodes the byte following the CB prefix. The table is dense:
// bits 0-2 select the operand, bits 3-5 the operation or bit index and
// bits 6-7 the group.
func decodeCB(code uint8) Instruction {
	target := registerIndex[code&7]
	y := (code >> 3) & 7
	switch code >> 6 {
	case 0:
		switch y {
		case 0:
			return RotateLeft{target}
		case 1:
			return RotateRight{target}
		case 2:
			return RotateLeftCarry{target}
		case 3:
			return RotateRightCarry{target}
		case 4:
			return ShiftLeft{target}
		case 5:
			return ShiftRightArithmetic{target}
		case 6:
			return Swap{target}
		}
		return ShiftRightLogical{target}
	case 1:
		return BitCheckZero{y, target}
	case 2:
		return BitReset{y, target}
	}
	return BitSet{y, target}
}
