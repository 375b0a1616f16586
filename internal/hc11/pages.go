package hc11

// page2Opcodes is selected by prebyte 0x18. It holds the Y register
// variants of the X indexed instructions. Sizes include the prebyte.
var page2Opcodes = [256]Opcode{
	0x08: {"INY", 2, ImpliedAddressing},
	0x09: {"DEY", 2, ImpliedAddressing},
	0x1C: {"BSET", 4, IndexedYBitAddressing},
	0x1D: {"BCLR", 4, IndexedYBitAddressing},
	0x1E: {"BRSET", 5, IndexedYBitRelativeAddressing},
	0x1F: {"BRCLR", 5, IndexedYBitRelativeAddressing},
	0x30: {"TSY", 2, ImpliedAddressing},
	0x35: {"TYS", 2, ImpliedAddressing},
	0x38: {"PULY", 2, ImpliedAddressing},
	0x3A: {"ABY", 2, ImpliedAddressing},
	0x3C: {"PSHY", 2, ImpliedAddressing},

	0x60: {"NEG", 3, IndexedYAddressing},
	0x63: {"COM", 3, IndexedYAddressing},
	0x64: {"LSR", 3, IndexedYAddressing},
	0x66: {"ROR", 3, IndexedYAddressing},
	0x67: {"ASR", 3, IndexedYAddressing},
	0x68: {"ASL", 3, IndexedYAddressing},
	0x69: {"ROL", 3, IndexedYAddressing},
	0x6A: {"DEC", 3, IndexedYAddressing},
	0x6C: {"INC", 3, IndexedYAddressing},
	0x6D: {"TST", 3, IndexedYAddressing},
	0x6E: {"JMP", 3, IndexedYAddressing},
	0x6F: {"CLR", 3, IndexedYAddressing},

	0x8C: {"CPY", 4, Immediate16Addressing},
	0x8F: {"XGDY", 2, ImpliedAddressing},
	0x9C: {"CPY", 3, DirectAddressing},

	0xA0: {"SUBA", 3, IndexedYAddressing},
	0xA1: {"CMPA", 3, IndexedYAddressing},
	0xA2: {"SBCA", 3, IndexedYAddressing},
	0xA3: {"SUBD", 3, IndexedYAddressing},
	0xA4: {"ANDA", 3, IndexedYAddressing},
	0xA5: {"BITA", 3, IndexedYAddressing},
	0xA6: {"LDAA", 3, IndexedYAddressing},
	0xA7: {"STAA", 3, IndexedYAddressing},
	0xA8: {"EORA", 3, IndexedYAddressing},
	0xA9: {"ADCA", 3, IndexedYAddressing},
	0xAA: {"ORAA", 3, IndexedYAddressing},
	0xAB: {"ADDA", 3, IndexedYAddressing},
	0xAC: {"CPY", 3, IndexedYAddressing},
	0xAD: {"JSR", 3, IndexedYAddressing},
	0xAE: {"LDS", 3, IndexedYAddressing},
	0xAF: {"STS", 3, IndexedYAddressing},

	0xBC: {"CPY", 4, ExtendedAddressing},
	0xCE: {"LDY", 4, Immediate16Addressing},
	0xDE: {"LDY", 3, DirectAddressing},
	0xDF: {"STY", 3, DirectAddressing},

	0xE0: {"SUBB", 3, IndexedYAddressing},
	0xE1: {"CMPB", 3, IndexedYAddressing},
	0xE2: {"SBCB", 3, IndexedYAddressing},
	0xE3: {"ADDD", 3, IndexedYAddressing},
	0xE4: {"ANDB", 3, IndexedYAddressing},
	0xE5: {"BITB", 3, IndexedYAddressing},
	0xE6: {"LDAB", 3, IndexedYAddressing},
	0xE7: {"STAB", 3, IndexedYAddressing},
	0xE8: {"EORB", 3, IndexedYAddressing},
	0xE9: {"ADCB", 3, IndexedYAddressing},
	0xEA: {"ORAB", 3, IndexedYAddressing},
	0xEB: {"ADDB", 3, IndexedYAddressing},
	0xEC: {"LDD", 3, IndexedYAddressing},
	0xED: {"STD", 3, IndexedYAddressing},
	0xEE: {"LDY", 3, IndexedYAddressing},
	0xEF: {"STY", 3, IndexedYAddressing},

	0xFE: {"LDY", 4, ExtendedAddressing},
	0xFF: {"STY", 4, ExtendedAddressing},
}

// page3Opcodes is selected by prebyte 0x1A. It holds CPD and the X indexed
// forms of the Y register instructions.
var page3Opcodes = [256]Opcode{
	0x83: {"CPD", 4, Immediate16Addressing},
	0x93: {"CPD", 3, DirectAddressing},
	0xA3: {"CPD", 3, IndexedXAddressing},
	0xAC: {"CPY", 3, IndexedXAddressing},
	0xB3: {"CPD", 4, ExtendedAddressing},
	0xEE: {"LDY", 3, IndexedXAddressing},
	0xEF: {"STY", 3, IndexedXAddressing},
}

// page4Opcodes is selected by prebyte 0xCD. It holds the Y indexed forms of
// the D and X register instructions.
var page4Opcodes = [256]Opcode{
	0xA3: {"CPD", 3, IndexedYAddressing},
	0xAC: {"CPX", 3, IndexedYAddressing},
	0xEE: {"LDX", 3, IndexedYAddressing},
	0xEF: {"STX", 3, IndexedYAddressing},
}
