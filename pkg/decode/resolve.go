package decode

import "de8086/pkg/inst"

// Resolve inspects the leading byte(s) of b and returns the Descriptor
// responsible for decoding and emitting that encoding. It never
// consumes input itself; Descriptor.Parse does that.
func Resolve(b []byte) Descriptor {
	if len(b) == 0 {
		return Unknown
	}
	b0 := b[0]

	switch b0 {
	case 0x26:
		return segESDescriptor
	case 0x2E:
		return segCSDescriptor
	case 0x36:
		return segSSDescriptor
	case 0x3E:
		return segDSDescriptor
	}

	if op, ok := arithGroupOpcode(b0); ok {
		base := b0 &^ 0x07
		switch {
		case b0 >= base && b0 <= base+3:
			return regRMDescriptor(op)
		case b0 == base+4 || b0 == base+5:
			return immToAccDescriptor(op)
		}
	}

	switch b0 {
	case 0x06, 0x0E, 0x16, 0x1E:
		return pushSegRegDescriptor
	case 0x07, 0x17, 0x1F:
		return popSegRegDescriptor
	case 0x27:
		return daaDescriptor
	case 0x2F:
		return dasDescriptor
	case 0x37:
		return aaaDescriptor
	case 0x3F:
		return aasDescriptor

	case 0x84, 0x85:
		return regRMDescriptor(inst.OpTest)
	case 0x86, 0x87:
		return xchgRegRMDescriptor
	case 0x88, 0x89, 0x8A, 0x8B:
		return regRMDescriptor(inst.OpMov)
	case 0x8C:
		return movSegRegDescriptor
	case 0x8D:
		return leaDescriptor
	case 0x8E:
		return movSegRegDescriptor
	case 0x8F:
		return popRMDescriptor

	case 0x90:
		return nopDescriptor
	case 0x91, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97:
		return xchgAccDescriptor
	case 0x98:
		return cbwDescriptor
	case 0x99:
		return cwdDescriptor
	case 0x9A:
		return callFarDescriptor
	case 0x9B:
		return waitDescriptor
	case 0x9C:
		return pushfDescriptor
	case 0x9D:
		return popfDescriptor
	case 0x9E:
		return sahfDescriptor
	case 0x9F:
		return lahfDescriptor

	case 0xA0, 0xA1, 0xA2, 0xA3:
		return movAccMemDescriptor
	case 0xA4:
		return stringOpDescriptor(stringOpsA4[0])
	case 0xA5:
		return stringOpDescriptor(stringOpsA4[1])
	case 0xA6:
		return stringOpDescriptor(stringOpsA4[2])
	case 0xA7:
		return stringOpDescriptor(stringOpsA4[3])
	case 0xA8, 0xA9:
		return immToAccDescriptor(inst.OpTest)
	case 0xAA, 0xAB, 0xAC, 0xAD, 0xAE, 0xAF:
		return stringOpDescriptor(stringOpsAA[b0-0xAA])

	case 0xC2:
		return retImmNearDescriptor
	case 0xC3:
		return retDescriptor
	case 0xC4:
		return lesDescriptor
	case 0xC5:
		return ldsDescriptor
	case 0xC6, 0xC7:
		return movImmToRMDescriptor
	case 0xCA:
		return retfImmDescriptor
	case 0xCB:
		return retfDescriptor
	case 0xCC:
		return int3Descriptor
	case 0xCD:
		return intDescriptor
	case 0xCE:
		return intoDescriptor
	case 0xCF:
		return iretDescriptor

	case 0xD0, 0xD1, 0xD2, 0xD3:
		return shiftDescriptor
	case 0xD4:
		return aamDescriptor
	case 0xD5:
		return aadDescriptor
	case 0xD7:
		return xlatDescriptor

	case 0xE0, 0xE1, 0xE2, 0xE3:
		return shortLabelDescriptor(loopOps[b0-0xE0])
	case 0xE4:
		return inFixedDescriptor
	case 0xE5:
		return inFixedDescriptor
	case 0xE6:
		return outFixedDescriptor
	case 0xE7:
		return outFixedDescriptor
	case 0xE8:
		return callNearDescriptor
	case 0xE9:
		return jmpNearDescriptor
	case 0xEA:
		return jmpFarDescriptor
	case 0xEB:
		return jmpShortDescriptor
	case 0xEC, 0xED:
		return inVarDescriptor
	case 0xEE, 0xEF:
		return outVarDescriptor

	case 0xF0:
		return lockDescriptor
	case 0xF2:
		return repneDescriptor
	case 0xF3:
		return repeDescriptor
	case 0xF4:
		return hltDescriptor
	case 0xF5:
		return cmcDescriptor
	case 0xF6, 0xF7:
		return unaryGroupDescriptor
	case 0xF8:
		return clcDescriptor
	case 0xF9:
		return stcDescriptor
	case 0xFA:
		return cliDescriptor
	case 0xFB:
		return stiDescriptor
	case 0xFC:
		return cldDescriptor
	case 0xFD:
		return stdDescriptor
	case 0xFE:
		return incDecByteDescriptor
	case 0xFF:
		return group0xFFDescriptor
	}

	if b0 >= 0x40 && b0 <= 0x47 {
		return incRegDescriptor
	}
	if b0 >= 0x48 && b0 <= 0x4F {
		return decRegDescriptor
	}
	if b0 >= 0x50 && b0 <= 0x57 {
		return pushRegDescriptor
	}
	if b0 >= 0x58 && b0 <= 0x5F {
		return popRegDescriptor
	}
	if b0 >= 0x70 && b0 <= 0x7F {
		return conditionalJumpDescriptor(condJumpOps[b0-0x70])
	}
	if b0 >= 0x80 && b0 <= 0x83 {
		return arithImmToRMDescriptor
	}
	if b0 >= 0xB0 && b0 <= 0xBF {
		return movImmToRegDescriptor
	}

	return Unknown
}
