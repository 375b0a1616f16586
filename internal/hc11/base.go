package hc11

// baseOpcodes is the unprefixed opcode page. The prebytes 0x18, 0x1A and
// 0xCD are intentionally unassigned here, they select the pages in pages.go.
// Unassigned slots decode as unknown opcodes.
var baseOpcodes = [256]Opcode{
	0x00: {"TEST", 1, ImpliedAddressing},
	0x01: {"NOP", 1, ImpliedAddressing},
	0x02: {"IDIV", 1, ImpliedAddressing},
	0x03: {"FDIV", 1, ImpliedAddressing},
	0x04: {"LSRD", 1, ImpliedAddressing},
	0x05: {"ASLD", 1, ImpliedAddressing},
	0x06: {"TAP", 1, ImpliedAddressing},
	0x07: {"TPA", 1, ImpliedAddressing},
	0x08: {"INX", 1, ImpliedAddressing},
	0x09: {"DEX", 1, ImpliedAddressing},
	0x0A: {"CLV", 1, ImpliedAddressing},
	0x0B: {"SEV", 1, ImpliedAddressing},
	0x0C: {"CLC", 1, ImpliedAddressing},
	0x0D: {"SEC", 1, ImpliedAddressing},
	0x0E: {"CLI", 1, ImpliedAddressing},
	0x0F: {"SEI", 1, ImpliedAddressing},

	0x10: {"SBA", 1, ImpliedAddressing},
	0x11: {"CBA", 1, ImpliedAddressing},
	0x12: {"BRSET", 4, DirectBitRelativeAddressing},
	0x13: {"BRCLR", 4, DirectBitRelativeAddressing},
	0x14: {"BSET", 3, DirectBitAddressing},
	0x15: {"BCLR", 3, DirectBitAddressing},
	0x16: {"TAB", 1, ImpliedAddressing},
	0x17: {"TBA", 1, ImpliedAddressing},
	0x19: {"DAA", 1, ImpliedAddressing},
	0x1B: {"ABA", 1, ImpliedAddressing},
	0x1C: {"BSET", 3, IndexedXBitAddressing},
	0x1D: {"BCLR", 3, IndexedXBitAddressing},
	0x1E: {"BRSET", 4, IndexedXBitRelativeAddressing},
	0x1F: {"BRCLR", 4, IndexedXBitRelativeAddressing},

	0x20: {"BRA", 2, RelativeAddressing},
	0x21: {"BRN", 2, RelativeAddressing},
	0x22: {"BHI", 2, RelativeAddressing},
	0x23: {"BLS", 2, RelativeAddressing},
	0x24: {"BCC", 2, RelativeAddressing},
	0x25: {"BCS", 2, RelativeAddressing},
	0x26: {"BNE", 2, RelativeAddressing},
	0x27: {"BEQ", 2, RelativeAddressing},
	0x28: {"BVC", 2, RelativeAddressing},
	0x29: {"BVS", 2, RelativeAddressing},
	0x2A: {"BPL", 2, RelativeAddressing},
	0x2B: {"BMI", 2, RelativeAddressing},
	0x2C: {"BGE", 2, RelativeAddressing},
	0x2D: {"BLT", 2, RelativeAddressing},
	0x2E: {"BGT", 2, RelativeAddressing},
	0x2F: {"BLE", 2, RelativeAddressing},

	0x30: {"TSX", 1, ImpliedAddressing},
	0x31: {"INS", 1, ImpliedAddressing},
	0x32: {"PULA", 1, ImpliedAddressing},
	0x33: {"PULB", 1, ImpliedAddressing},
	0x34: {"DES", 1, ImpliedAddressing},
	0x35: {"TXS", 1, ImpliedAddressing},
	0x36: {"PSHA", 1, ImpliedAddressing},
	0x37: {"PSHB", 1, ImpliedAddressing},
	0x38: {"PULX", 1, ImpliedAddressing},
	0x39: {"RTS", 1, ImpliedAddressing},
	0x3A: {"ABX", 1, ImpliedAddressing},
	0x3B: {"RTI", 1, ImpliedAddressing},
	0x3C: {"PSHX", 1, ImpliedAddressing},
	0x3D: {"MUL", 1, ImpliedAddressing},
	0x3E: {"WAI", 1, ImpliedAddressing},
	0x3F: {"SWI", 1, ImpliedAddressing},

	0x40: {"NEGA", 1, ImpliedAddressing},
	0x43: {"COMA", 1, ImpliedAddressing},
	0x44: {"LSRA", 1, ImpliedAddressing},
	0x46: {"RORA", 1, ImpliedAddressing},
	0x47: {"ASRA", 1, ImpliedAddressing},
	0x48: {"ASLA", 1, ImpliedAddressing},
	0x49: {"ROLA", 1, ImpliedAddressing},
	0x4A: {"DECA", 1, ImpliedAddressing},
	0x4C: {"INCA", 1, ImpliedAddressing},
	0x4D: {"TSTA", 1, ImpliedAddressing},
	0x4F: {"CLRA", 1, ImpliedAddressing},

	0x50: {"NEGB", 1, ImpliedAddressing},
	0x53: {"COMB", 1, ImpliedAddressing},
	0x54: {"LSRB", 1, ImpliedAddressing},
	0x56: {"RORB", 1, ImpliedAddressing},
	0x57: {"ASRB", 1, ImpliedAddressing},
	0x58: {"ASLB", 1, ImpliedAddressing},
	0x59: {"ROLB", 1, ImpliedAddressing},
	0x5A: {"DECB", 1, ImpliedAddressing},
	0x5C: {"INCB", 1, ImpliedAddressing},
	0x5D: {"TSTB", 1, ImpliedAddressing},
	0x5F: {"CLRB", 1, ImpliedAddressing},

	0x60: {"NEG", 2, IndexedXAddressing},
	0x63: {"COM", 2, IndexedXAddressing},
	0x64: {"LSR", 2, IndexedXAddressing},
	0x66: {"ROR", 2, IndexedXAddressing},
	0x67: {"ASR", 2, IndexedXAddressing},
	0x68: {"ASL", 2, IndexedXAddressing},
	0x69: {"ROL", 2, IndexedXAddressing},
	0x6A: {"DEC", 2, IndexedXAddressing},
	0x6C: {"INC", 2, IndexedXAddressing},
	0x6D: {"TST", 2, IndexedXAddressing},
	0x6E: {"JMP", 2, IndexedXAddressing},
	0x6F: {"CLR", 2, IndexedXAddressing},

	0x70: {"NEG", 3, ExtendedAddressing},
	0x73: {"COM", 3, ExtendedAddressing},
	0x74: {"LSR", 3, ExtendedAddressing},
	0x76: {"ROR", 3, ExtendedAddressing},
	0x77: {"ASR", 3, ExtendedAddressing},
	0x78: {"ASL", 3, ExtendedAddressing},
	0x79: {"ROL", 3, ExtendedAddressing},
	0x7A: {"DEC", 3, ExtendedAddressing},
	0x7C: {"INC", 3, ExtendedAddressing},
	0x7D: {"TST", 3, ExtendedAddressing},
	0x7E: {"JMP", 3, ExtendedAddressing},
	0x7F: {"CLR", 3, ExtendedAddressing},

	0x80: {"SUBA", 2, ImmediateAddressing},
	0x81: {"CMPA", 2, ImmediateAddressing},
	0x82: {"SBCA", 2, ImmediateAddressing},
	0x83: {"SUBD", 3, Immediate16Addressing},
	0x84: {"ANDA", 2, ImmediateAddressing},
	0x85: {"BITA", 2, ImmediateAddressing},
	0x86: {"LDAA", 2, ImmediateAddressing},
	0x88: {"EORA", 2, ImmediateAddressing},
	0x89: {"ADCA", 2, ImmediateAddressing},
	0x8A: {"ORAA", 2, ImmediateAddressing},
	0x8B: {"ADDA", 2, ImmediateAddressing},
	0x8C: {"CPX", 3, Immediate16Addressing},
	0x8D: {"BSR", 2, RelativeAddressing},
	0x8E: {"LDS", 3, Immediate16Addressing},
	0x8F: {"XGDX", 1, ImpliedAddressing},

	0x90: {"SUBA", 2, DirectAddressing},
	0x91: {"CMPA", 2, DirectAddressing},
	0x92: {"SBCA", 2, DirectAddressing},
	0x93: {"SUBD", 2, DirectAddressing},
	0x94: {"ANDA", 2, DirectAddressing},
	0x95: {"BITA", 2, DirectAddressing},
	0x96: {"LDAA", 2, DirectAddressing},
	0x97: {"STAA", 2, DirectAddressing},
	0x98: {"EORA", 2, DirectAddressing},
	0x99: {"ADCA", 2, DirectAddressing},
	0x9A: {"ORAA", 2, DirectAddressing},
	0x9B: {"ADDA", 2, DirectAddressing},
	0x9C: {"CPX", 2, DirectAddressing},
	0x9D: {"JSR", 2, DirectAddressing},
	0x9E: {"LDS", 2, DirectAddressing},
	0x9F: {"STS", 2, DirectAddressing},

	0xA0: {"SUBA", 2, IndexedXAddressing},
	0xA1: {"CMPA", 2, IndexedXAddressing},
	0xA2: {"SBCA", 2, IndexedXAddressing},
	0xA3: {"SUBD", 2, IndexedXAddressing},
	0xA4: {"ANDA", 2, IndexedXAddressing},
	0xA5: {"BITA", 2, IndexedXAddressing},
	0xA6: {"LDAA", 2, IndexedXAddressing},
	0xA7: {"STAA", 2, IndexedXAddressing},
	0xA8: {"EORA", 2, IndexedXAddressing},
	0xA9: {"ADCA", 2, IndexedXAddressing},
	0xAA: {"ORAA", 2, IndexedXAddressing},
	0xAB: {"ADDA", 2, IndexedXAddressing},
	0xAC: {"CPX", 2, IndexedXAddressing},
	0xAD: {"JSR", 2, IndexedXAddressing},
	0xAE: {"LDS", 2, IndexedXAddressing},
	0xAF: {"STS", 2, IndexedXAddressing},

	0xB0: {"SUBA", 3, ExtendedAddressing},
	0xB1: {"CMPA", 3, ExtendedAddressing},
	0xB2: {"SBCA", 3, ExtendedAddressing},
	0xB3: {"SUBD", 3, ExtendedAddressing},
	0xB4: {"ANDA", 3, ExtendedAddressing},
	0xB5: {"BITA", 3, ExtendedAddressing},
	0xB6: {"LDAA", 3, ExtendedAddressing},
	0xB7: {"STAA", 3, ExtendedAddressing},
	0xB8: {"EORA", 3, ExtendedAddressing},
	0xB9: {"ADCA", 3, ExtendedAddressing},
	0xBA: {"ORAA", 3, ExtendedAddressing},
	0xBB: {"ADDA", 3, ExtendedAddressing},
	0xBC: {"CPX", 3, ExtendedAddressing},
	0xBD: {"JSR", 3, ExtendedAddressing},
	0xBE: {"LDS", 3, ExtendedAddressing},
	0xBF: {"STS", 3, ExtendedAddressing},

	0xC0: {"SUBB", 2, ImmediateAddressing},
	0xC1: {"CMPB", 2, ImmediateAddressing},
	0xC2: {"SBCB", 2, ImmediateAddressing},
	0xC3: {"ADDD", 3, Immediate16Addressing},
	0xC4: {"ANDB", 2, ImmediateAddressing},
	0xC5: {"BITB", 2, ImmediateAddressing},
	0xC6: {"LDAB", 2, ImmediateAddressing},
	0xC8: {"EORB", 2, ImmediateAddressing},
	0xC9: {"ADCB", 2, ImmediateAddressing},
	0xCA: {"ORAB", 2, ImmediateAddressing},
	0xCB: {"ADDB", 2, ImmediateAddressing},
	0xCC: {"LDD", 3, Immediate16Addressing},
	0xCE: {"LDX", 3, Immediate16Addressing},
	0xCF: {"STOP", 1, ImpliedAddressing},

	0xD0: {"SUBB", 2, DirectAddressing},
	0xD1: {"CMPB", 2, DirectAddressing},
	0xD2: {"SBCB", 2, DirectAddressing},
	0xD3: {"ADDD", 2, DirectAddressing},
	0xD4: {"ANDB", 2, DirectAddressing},
	0xD5: {"BITB", 2, DirectAddressing},
	0xD6: {"LDAB", 2, DirectAddressing},
	0xD7: {"STAB", 2, DirectAddressing},
	0xD8: {"EORB", 2, DirectAddressing},
	0xD9: {"ADCB", 2, DirectAddressing},
	0xDA: {"ORAB", 2, DirectAddressing},
	0xDB: {"ADDB", 2, DirectAddressing},
	0xDC: {"LDD", 2, DirectAddressing},
	0xDD: {"STD", 2, DirectAddressing},
	0xDE: {"LDX", 2, DirectAddressing},
	0xDF: {"STX", 2, DirectAddressing},

	0xE0: {"SUBB", 2, IndexedXAddressing},
	0xE1: {"CMPB", 2, IndexedXAddressing},
	0xE2: {"SBCB", 2, IndexedXAddressing},
	0xE3: {"ADDD", 2, IndexedXAddressing},
	0xE4: {"ANDB", 2, IndexedXAddressing},
	0xE5: {"BITB", 2, IndexedXAddressing},
	0xE6: {"LDAB", 2, IndexedXAddressing},
	0xE7: {"STAB", 2, IndexedXAddressing},
	0xE8: {"EORB", 2, IndexedXAddressing},
	0xE9: {"ADCB", 2, IndexedXAddressing},
	0xEA: {"ORAB", 2, IndexedXAddressing},
	0xEB: {"ADDB", 2, IndexedXAddressing},
	0xEC: {"LDD", 2, IndexedXAddressing},
	0xED: {"STD", 2, IndexedXAddressing},
	0xEE: {"LDX", 2, IndexedXAddressing},
	0xEF: {"STX", 2, IndexedXAddressing},

	0xF0: {"SUBB", 3, ExtendedAddressing},
	0xF1: {"CMPB", 3, ExtendedAddressing},
	0xF2: {"SBCB", 3, ExtendedAddressing},
	0xF3: {"ADDD", 3, ExtendedAddressing},
	0xF4: {"ANDB", 3, ExtendedAddressing},
	0xF5: {"BITB", 3, ExtendedAddressing},
	0xF6: {"LDAB", 3, ExtendedAddressing},
	0xF7: {"STAB", 3, ExtendedAddressing},
	0xF8: {"EORB", 3, ExtendedAddressing},
	0xF9: {"ADCB", 3, ExtendedAddressing},
	0xFA: {"ORAB", 3, ExtendedAddressing},
	0xFB: {"ADDB", 3, ExtendedAddressing},
	0xFC: {"LDD", 3, ExtendedAddressing},
	0xFD: {"STD", 3, ExtendedAddressing},
	0xFE: {"LDX", 3, ExtendedAddressing},
	0xFF: {"STX", 3, ExtendedAddressing},
}
