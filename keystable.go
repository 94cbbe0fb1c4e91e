package edit

// Flag bits for one keys-table entry: a small bitset so one entry's
// behavior can be described as a combination of independent properties.
type keyFlag uint8

const (
	flagIsMotion  keyFlag = 1 << iota // entry is a motion, usable standalone or as an operand
	flagHasMotion                     // entry is an operator: the parser must collect a following motion
	flagHasArg                        // entry consumes one argument rune (mark name, f/F/t/T target)
	flagZeroCount                     // a count of 0 is passed through rather than defaulted to 1 (G)
)

// keyEntry is one row of the 128-entry keys table: a flag set and exactly
// one handler, discriminated by flagIsMotion. Representing the handler as
// two optional fields (rather than an untagged union) keeps the
// "IsMotion/HasMotion mutually exclusive" invariant checkable by inspection
// rather than relying on an unchecked union.
type keyEntry struct {
	flags  keyFlag
	motion motionFunc
	action actionFunc
}

func (k keyEntry) valid() bool {
	return k.motion != nil || k.action != nil
}

// keysTable is the fixed 128-entry ASCII → entry table, the single source of
// truth for parser classification. It is populated once, by init, from the
// motion and action catalogs.
var keysTable [128]keyEntry

func motionEntry(flags keyFlag, fn motionFunc) keyEntry {
	return keyEntry{flags: flags | flagIsMotion, motion: fn}
}

func actionEntry(flags keyFlag, fn actionFunc) keyEntry {
	return keyEntry{flags: flags, action: fn}
}

func init() {
	// Motions.
	keysTable['h'] = motionEntry(0, motionHoriz(-1))
	keysTable['l'] = motionEntry(0, motionHoriz(+1))
	keysTable['j'] = motionEntry(0, motionVert(+1))
	keysTable['k'] = motionEntry(0, motionVert(-1))
	keysTable['f'] = motionEntry(flagHasArg, motionFind(false, false))
	keysTable['F'] = motionEntry(flagHasArg, motionFind(true, false))
	keysTable['t'] = motionEntry(flagHasArg, motionFind(false, true))
	keysTable['T'] = motionEntry(flagHasArg, motionFind(true, true))
	keysTable[';'] = motionEntry(0, motionRepeatFind(false))
	keysTable[','] = motionEntry(0, motionRepeatFind(true))
	keysTable['0'] = motionEntry(flagZeroCount, motionBOL)
	keysTable['^'] = motionEntry(0, motionFirstNonBlank)
	keysTable['$'] = motionEntry(0, motionEOL)
	keysTable['_'] = motionEntry(0, motionLine)
	keysTable['w'] = motionEntry(0, motionWordForward(isWord, false))
	keysTable['W'] = motionEntry(0, motionWordForward(notSpace, false))
	keysTable['e'] = motionEntry(0, motionWordForward(isWord, true))
	keysTable['E'] = motionEntry(0, motionWordForward(notSpace, true))
	keysTable['b'] = motionEntry(0, motionWordBackward(isWord))
	keysTable['B'] = motionEntry(0, motionWordBackward(notSpace))
	keysTable['{'] = motionEntry(0, motionParagraph(-1))
	keysTable['}'] = motionEntry(0, motionParagraph(+1))
	keysTable['%'] = motionEntry(0, motionBracketMatch)
	keysTable['G'] = motionEntry(flagZeroCount, motionGotoLine)
	keysTable['H'] = motionEntry(0, motionScreen(screenTop))
	keysTable['M'] = motionEntry(0, motionScreen(screenMiddle))
	keysTable['L'] = motionEntry(0, motionScreen(screenBottom))
	keysTable['\''] = motionEntry(flagHasArg, motionMark(true))
	keysTable['`'] = motionEntry(flagHasArg, motionMark(false))
	keysTable['n'] = motionEntry(0, motionSearch(false))
	keysTable['N'] = motionEntry(0, motionSearch(true))
	keysTable['/'] = motionEntry(0, motionSelection)

	// Actions.
	keysTable['y'] = actionEntry(flagHasMotion, actionYank)
	keysTable['d'] = actionEntry(flagHasMotion, actionDelete)
	keysTable['x'] = actionEntry(0, actionDelete)
	keysTable['c'] = actionEntry(flagHasMotion, actionChange)
	keysTable['p'] = actionEntry(0, actionPut(true))
	keysTable['P'] = actionEntry(0, actionPut(false))
	keysTable['m'] = actionEntry(flagHasArg, actionSetMark)
	keysTable['i'] = actionEntry(0, actionInsert)
	keysTable['I'] = actionEntry(0, actionInsert)
	keysTable['a'] = actionEntry(0, actionInsert)
	keysTable['A'] = actionEntry(0, actionInsert)
	keysTable['o'] = actionEntry(0, actionInsert)
	keysTable['O'] = actionEntry(0, actionInsert)
	keysTable['u'] = actionEntry(0, actionUndo)
	keysTable['.'] = actionEntry(0, actionRepeat)
	keysTable[byte(ctrlE)] = actionEntry(0, actionScroll)
	keysTable[byte(ctrlY)] = actionEntry(0, actionScroll)
	keysTable[byte(ctrlU)] = actionEntry(flagZeroCount, actionScroll)
	keysTable[byte(ctrlD)] = actionEntry(flagZeroCount, actionScroll)
	keysTable[byte(ctrlT)] = actionEntry(0, actionToggleTag)
	keysTable[byte(ctrlI)] = actionEntry(0, actionRunLine)
	keysTable[byte(ctrlL)] = actionEntry(flagHasArg, actionFocusWindow)
	keysTable[byte(ctrlW)] = actionEntry(0, actionPersist)
	keysTable[byte(ctrlQ)] = actionEntry(0, actionQuit)
}

func notSpace(r rune) bool { return !isSpace(r) }
