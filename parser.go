package edit

// feedCommand advances the persistent command-mode parser by one rune. It is
// only called while e.mode == ModeCommand and r is not GKEsc (Feed handles
// both of those before reaching here).
func (e *Editor) feedCommand(r rune) error {
	switch e.phase {
	case phaseBufferDQuote:
		return e.feedBufferDQuote(r)
	case phaseBufferName:
		return e.feedBufferName(r)
	case phaseCmdChar:
		return e.feedCmdChar(r)
	case phaseCmdArg:
		return e.feedCmdArg(r)
	default:
		return e.parseError()
	}
}

func (e *Editor) feedBufferDQuote(r rune) error {
	if r == '"' {
		e.phase = phaseBufferName
		return nil
	}
	// Tail call into CmdChar with the same rune: no register prefix given.
	e.phase = phaseCmdChar
	return e.feedCmdChar(r)
}

func (e *Editor) feedBufferName(r rune) error {
	isLower := r >= 'a' && r <= 'z'
	isDigit := r >= '0' && r <= '9'
	if !isLower && !isDigit {
		return e.parseError()
	}
	e.pbuf = r
	e.phase = phaseCmdChar
	return nil
}

func (e *Editor) feedCmdChar(r rune) error {
	frag := e.fragment()

	if r >= '0' && r <= '9' && (r != '0' || frag.Count != 0) {
		frag.Count = frag.Count*10 + int(r-'0')
		return nil
	}

	if r < 0 || r > 127 {
		return e.parseError()
	}

	// A doubled operator (dd, yy, cc) repeats the operator's own rune while
	// collecting its motion, rather than naming a distinct motion; it always
	// means "operate on the current count lines", so it dispatches directly
	// against a synthetic line-selecting motion instead of returning to
	// ordinary motion collection. See DESIGN.md's implementation decisions for why
	// this reading was chosen over treating _ as a regular typed motion.
	if e.target == targetMotion && byte(r) == e.cur.Chr {
		e.mot = Cmd{Count: 1, Chr: '_'}
		return e.dispatchCommand()
	}

	entry := keysTable[byte(r)]
	if !entry.valid() {
		return e.parseError()
	}
	if e.target == targetMotion && entry.flags&flagIsMotion == 0 {
		return e.parseError()
	}

	if frag.Count == 0 && entry.flags&flagZeroCount == 0 {
		frag.Count = 1
	}
	frag.Chr = byte(r)

	switch {
	case entry.flags&flagHasArg != 0:
		e.phase = phaseCmdArg
		return nil
	default:
		return e.finalize(entry)
	}
}

func (e *Editor) feedCmdArg(r rune) error {
	frag := e.fragment()
	frag.Arg = r
	entry := keysTable[frag.Chr]
	return e.finalize(entry)
}

// finalize applies the finalization rules once a fragment's rune (and, if
// applicable, argument) have been fully read.
func (e *Editor) finalize(entry keyEntry) error {
	if entry.flags&flagHasMotion != 0 {
		e.target = targetMotion
		e.phase = phaseCmdChar
		return nil
	}
	return e.dispatchCommand()
}

func (e *Editor) dispatchCommand() error {
	err := e.dispatch(e.pbuf, e.cur, e.mot)
	e.resetParser()
	return err
}

func (e *Editor) parseError() error {
	e.resetParser()
	return ErrInvalidCommand
}
