package vm

// Program is an ordered instruction sequence. An instruction's 0-based
// index is its address; the sequence is read-only once parsed.
type Program []Instruction

// String returns the canonical source listing, one instruction per line.
// Parsing the listing again yields an equal Program.
func (prog Program) String() (text string) {
	for _, ins := range prog {
		text += ins.String() + "\n"
	}

	return
}
