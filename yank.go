package edit

// yankSlot holds the runes yanked or deleted into one register, plus the
// line-mode flag that determines how a later put positions the cursor and
// whether it inserts before or after the current line.
type yankSlot struct {
	runes    []rune
	linemode bool
}

// yankRing is the anonymous register plus the 9-element numeric ring.
// Numeric slots are a fixed array, not a slice: small, fixed-size state like
// this favors a bounded-capacity array over a dynamically growing
// collection.
//
// ytip is the head of the ring: slot "1 as the user types it is always
// ring[ytip], the most recently written line-wise yank. Before each
// line-wise yank, ytip is decremented (mod 9) so the write lands one ring
// position before the previous write and becomes "1, aging every existing
// entry one slot toward "9.
type yankRing struct {
	anon yankSlot
	ring [9]yankSlot
	ytip int
}

// slot resolves a register name to the slot it addresses. name == 0 selects
// the anonymous register; '1'..'9' selects the numeric ring; any other name
// is an unsupported register (no multi-level addressing beyond anonymous +
// numeric 1-9) and also resolves to anonymous.
func (y *yankRing) slot(name rune) *yankSlot {
	if name >= '1' && name <= '9' {
		i := int(name - '1')
		return &y.ring[(y.ytip+i)%9]
	}
	return &y.anon
}

// store records [runes] as the result of a yank or delete. It always updates
// the anonymous register; a line-wise yank additionally rotates the numeric
// ring so slot "1 holds this yank.
func (y *yankRing) store(runes []rune, linemode bool) {
	cp := append([]rune(nil), runes...)
	y.anon = yankSlot{runes: cp, linemode: linemode}
	if linemode {
		y.ytip = (y.ytip + 8) % 9
		y.ring[y.ytip] = yankSlot{runes: append([]rune(nil), cp...), linemode: true}
	}
}

// storeNamed is like store but also writes the named register: anonymous by
// default, "1.."9 indexes the ring, the addressing used by y/d/c. Every
// line-wise yank rotates the ring through store, whatever the name; an
// explicit "1.."9 name then overwrites that slot as addressed after the
// rotation, and a char-wise yank to it does not rotate at all.
func (y *yankRing) storeNamed(name rune, runes []rune, linemode bool) {
	y.store(runes, linemode)
	if name >= 'a' && name <= 'z' {
		// Named letter registers are out of scope for this core (no
		// multi-level yank register addressing beyond anonymous + numeric
		// 1-9); the buffer name is still accepted by the parser (it is a
		// legal "x prefix) but has no distinct storage here and aliases the
		// anonymous register.
		return
	}
	if name >= '1' && name <= '9' {
		i := int(name - '1')
		y.ring[(y.ytip+i)%9] = yankSlot{runes: append([]rune(nil), runes...), linemode: linemode}
	}
}
