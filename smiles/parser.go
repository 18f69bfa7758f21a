package smiles

import (
	"fmt"

	"github.com/katalvlaran/molgraph/mol"
)

// noAtom marks "no current atom": at the start of the string and after a
// dot, the next atom opens a fresh component.
const noAtom = -1

// noBond marks "no explicit bond symbol pending".
const noBond = mol.BondOrder(0)

// ringRef records the open side of a ring-bond closure.
type ringRef struct {
	atom  int           // atom that opened the ring bond
	order mol.BondOrder // explicit bond symbol, or noBond
	pos   int           // byte offset, for error reporting
}

// parser holds the single pass of mutable parse state.
type parser struct {
	src     string
	pos     int
	m       *mol.Molecule
	prev    int           // chain head; noAtom at start and after '.'
	pending mol.BondOrder // bond symbol awaiting its right-hand atom
	stack   []int         // branch return points ('(' pushes, ')' pops)
	rings   map[int]ringRef
}

// Parse converts a SMILES descriptor into a Molecule.
// Atom indices follow appearance order in the string. See the package
// documentation for the accepted subset and the error taxonomy.
// Complexity: O(len(s)) plus O(1) per ring closure.
func Parse(s string) (*mol.Molecule, error) {
	if s == "" {
		return nil, ErrEmptyInput
	}

	p := &parser{
		src:   s,
		m:     mol.NewMolecule(),
		prev:  noAtom,
		rings: make(map[int]ringRef),
	}
	if err := p.run(); err != nil {
		return nil, err
	}

	return p.m, nil
}

// run drives the main scan loop and the end-of-input checks.
func (p *parser) run() error {
	for p.pos < len(p.src) {
		if err := p.step(); err != nil {
			return err
		}
	}

	if p.pending != noBond {
		return fmt.Errorf("%w at end of input", ErrDanglingBond)
	}
	if len(p.stack) > 0 {
		return fmt.Errorf("%w: %d branch(es) still open", ErrUnclosedBranch, len(p.stack))
	}
	for num, ref := range p.rings {
		return fmt.Errorf("%w: ring bond %d opened at position %d", ErrUnclosedRing, num, ref.pos)
	}
	if p.m.NumAtoms() == 0 {
		return ErrEmptyInput
	}

	return nil
}

// step consumes exactly one token.
func (p *parser) step() error {
	c := p.src[p.pos]
	switch {
	case c == '-' || c == '=' || c == '#' || c == ':' || c == '/' || c == '\\':
		return p.scanBond(c)
	case c == '(':
		return p.scanBranchOpen()
	case c == ')':
		return p.scanBranchClose()
	case c == '.':
		return p.scanDot()
	case c >= '1' && c <= '9', c == '%':
		return p.scanRingBond()
	case c == '[':
		return p.scanBracketAtom()
	case c >= 'A' && c <= 'Z':
		return p.scanOrganicAtom()
	case c >= 'a' && c <= 'z':
		return p.scanAromaticAtom()
	default:
		return fmt.Errorf("%w: %q at position %d", ErrSyntax, c, p.pos)
	}
}

func (p *parser) scanBond(c byte) error {
	if p.prev == noAtom {
		return fmt.Errorf("%w: bond %q before any atom at position %d", ErrSyntax, c, p.pos)
	}
	if p.pending != noBond {
		return fmt.Errorf("%w: consecutive bond symbols at position %d", ErrSyntax, p.pos)
	}

	switch c {
	case '=':
		p.pending = mol.Double
	case '#':
		p.pending = mol.Triple
	case ':':
		p.pending = mol.Aromatic
	default: // '-', '/', '\' all bind as single
		p.pending = mol.Single
	}
	p.pos++

	return nil
}

func (p *parser) scanBranchOpen() error {
	if p.prev == noAtom {
		return fmt.Errorf("%w: branch before any atom at position %d", ErrSyntax, p.pos)
	}
	if p.pending != noBond {
		return fmt.Errorf("%w: bond before %q at position %d", ErrSyntax, '(', p.pos)
	}
	p.stack = append(p.stack, p.prev)
	p.pos++

	return nil
}

func (p *parser) scanBranchClose() error {
	if len(p.stack) == 0 {
		return fmt.Errorf("%w at position %d", ErrExtraBranchClose, p.pos)
	}
	if p.pending != noBond {
		return fmt.Errorf("%w before %q at position %d", ErrDanglingBond, ')', p.pos)
	}
	p.prev = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.pos++

	return nil
}

func (p *parser) scanDot() error {
	if p.pending != noBond {
		return fmt.Errorf("%w before %q at position %d", ErrDanglingBond, '.', p.pos)
	}
	p.prev = noAtom
	p.pos++

	return nil
}

// scanRingBond handles both sides of a numbered ring-bond closure.
func (p *parser) scanRingBond() error {
	if p.prev == noAtom {
		return fmt.Errorf("%w: ring bond before any atom at position %d", ErrSyntax, p.pos)
	}

	start := p.pos
	num, err := p.ringNumber()
	if err != nil {
		return err
	}

	ref, open := p.rings[num]
	if !open {
		p.rings[num] = ringRef{atom: p.prev, order: p.pending, pos: start}
		p.pending = noBond

		return nil
	}

	if ref.atom == p.prev {
		return fmt.Errorf("%w: ring bond %d closes on its own atom at position %d", ErrSyntax, num, start)
	}
	order, err := p.closureOrder(ref, num, start)
	if err != nil {
		return err
	}
	if _, err = p.m.AddBond(ref.atom, p.prev, order); err != nil {
		return fmt.Errorf("smiles: ring bond %d at position %d: %w", num, start, err)
	}
	delete(p.rings, num)
	p.pending = noBond

	return nil
}

// ringNumber reads a single digit or a %nn two-digit ring-bond number.
func (p *parser) ringNumber() (int, error) {
	c := p.src[p.pos]
	if c != '%' {
		p.pos++

		return int(c - '0'), nil
	}
	if p.pos+2 >= len(p.src) || !isDigit(p.src[p.pos+1]) || !isDigit(p.src[p.pos+2]) {
		return 0, fmt.Errorf("%w: %%nn ring bond needs two digits at position %d", ErrSyntax, p.pos)
	}
	num := int(p.src[p.pos+1]-'0')*10 + int(p.src[p.pos+2]-'0')
	p.pos += 3

	return num, nil
}

// closureOrder reconciles the bond symbols written on the two sides of a
// ring closure: at most one side may specify one, and an unwritten closure
// between aromatic atoms is aromatic.
func (p *parser) closureOrder(ref ringRef, num, pos int) (mol.BondOrder, error) {
	switch {
	case ref.order != noBond && p.pending != noBond && ref.order != p.pending:
		return noBond, fmt.Errorf("%w: ring bond %d at position %d", ErrRingBondConflict, num, pos)
	case ref.order != noBond:
		return ref.order, nil
	case p.pending != noBond:
		return p.pending, nil
	default:
		return p.impliedOrder(ref.atom, p.prev), nil
	}
}

// scanOrganicAtom reads a bare organic-subset atom, matching the two-letter
// symbols (Cl, Br) greedily.
func (p *parser) scanOrganicAtom() error {
	sym := p.src[p.pos : p.pos+1]
	if p.pos+1 < len(p.src) {
		if two := p.src[p.pos : p.pos+2]; organicSubset[two] {
			sym = two
		}
	}
	if !organicSubset[sym] {
		return fmt.Errorf("%w: %q at position %d", ErrUnknownElement, sym, p.pos)
	}
	p.pos += len(sym)

	return p.emit(mol.Atom{Element: sym, Hydrogens: mol.ImplicitH})
}

// scanAromaticAtom reads a lowercase aromatic organic-subset atom.
func (p *parser) scanAromaticAtom() error {
	elem, ok := aromaticSubset[p.src[p.pos]]
	if !ok {
		return fmt.Errorf("%w: %q at position %d", ErrSyntax, p.src[p.pos], p.pos)
	}
	p.pos++

	return p.emit(mol.Atom{Element: elem, Aromatic: true, Hydrogens: mol.ImplicitH})
}

// scanBracketAtom reads [isotope? symbol chirality? Hcount? charge? class?].
// Bracket atoms carry their hydrogen count explicitly: absent means zero.
func (p *parser) scanBracketAtom() error {
	open := p.pos
	p.pos++ // consume '['

	a := mol.Atom{Hydrogens: 0}
	a.Isotope, _ = p.readDigits()

	if err := p.bracketSymbol(&a, open); err != nil {
		return err
	}

	// Chirality tags are accepted and ignored.
	for p.pos < len(p.src) && p.src[p.pos] == '@' {
		p.pos++
	}

	if p.pos < len(p.src) && p.src[p.pos] == 'H' && !isLower(peek(p.src, p.pos+1)) {
		p.pos++
		if n, ok := p.readDigits(); ok {
			a.Hydrogens = n
		} else {
			a.Hydrogens = 1
		}
	}

	a.Charge = p.readCharge()

	// Atom class, e.g. [CH4:2]; the class number carries no chemistry.
	if p.pos < len(p.src) && p.src[p.pos] == ':' {
		p.pos++
		if _, ok := p.readDigits(); !ok {
			return fmt.Errorf("%w: atom class needs digits at position %d", ErrBadBracket, p.pos)
		}
	}

	if p.pos >= len(p.src) || p.src[p.pos] != ']' {
		return fmt.Errorf("%w: opened at position %d", ErrBadBracket, open)
	}
	p.pos++

	return p.emit(a)
}

// bracketSymbol reads the element symbol inside a bracket atom, accepting
// the aromatic lowercase forms and any periodic-table symbol.
func (p *parser) bracketSymbol(a *mol.Atom, open int) error {
	if p.pos >= len(p.src) {
		return fmt.Errorf("%w: opened at position %d", ErrBadBracket, open)
	}

	c := p.src[p.pos]
	if elem, ok := aromaticSubset[c]; ok {
		a.Element = elem
		a.Aromatic = true
		p.pos++

		return nil
	}
	if c < 'A' || c > 'Z' {
		return fmt.Errorf("%w: expected element symbol at position %d", ErrBadBracket, p.pos)
	}

	sym := p.src[p.pos : p.pos+1]
	if p.pos+1 < len(p.src) && isLower(p.src[p.pos+1]) {
		if two := p.src[p.pos : p.pos+2]; periodicTable[two] {
			sym = two
		}
	}
	if !periodicTable[sym] {
		return fmt.Errorf("%w: %q at position %d", ErrUnknownElement, sym, p.pos)
	}
	p.pos += len(sym)
	a.Element = sym

	return nil
}

// readCharge reads +, -, ++, --, +n, or -n. Absent charge is zero.
func (p *parser) readCharge() int {
	if p.pos >= len(p.src) {
		return 0
	}

	var sign int
	switch p.src[p.pos] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return 0
	}
	p.pos++

	if n, ok := p.readDigits(); ok {
		return sign * n
	}

	magnitude := 1
	for p.pos < len(p.src) && ((sign == 1 && p.src[p.pos] == '+') || (sign == -1 && p.src[p.pos] == '-')) {
		magnitude++
		p.pos++
	}

	return sign * magnitude
}

// readDigits consumes a run of digits; ok is false when none were present.
func (p *parser) readDigits() (int, bool) {
	start := p.pos
	n := 0
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		n = n*10 + int(p.src[p.pos]-'0')
		p.pos++
	}

	return n, p.pos > start
}

// emit appends the atom and bonds it to the current chain head.
func (p *parser) emit(a mol.Atom) error {
	idx := p.m.AddAtom(a)
	if p.prev != noAtom {
		order := p.pending
		if order == noBond {
			order = p.impliedOrder(p.prev, idx)
		}
		if _, err := p.m.AddBond(p.prev, idx, order); err != nil {
			return fmt.Errorf("smiles: at position %d: %w", p.pos, err)
		}
	}
	p.prev = idx
	p.pending = noBond

	return nil
}

// impliedOrder resolves an unwritten bond: aromatic between two aromatic
// atoms, single otherwise.
func (p *parser) impliedOrder(u, v int) mol.BondOrder {
	au, _ := p.m.Atom(u)
	av, _ := p.m.Atom(v)
	if au.Aromatic && av.Aromatic {
		return mol.Aromatic
	}

	return mol.Single
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

// peek returns the byte at i, or 0 past the end.
func peek(s string, i int) byte {
	if i >= len(s) {
		return 0
	}

	return s[i]
}
