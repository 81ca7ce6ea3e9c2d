package command

import (
	"strconv"

	"github.com/opal-lang/bakery/core/invariant"
)

// MathType is the operation of a Math command.
type MathType int

const (
	MathAdd MathType = iota
	MathSub
	MathMul
	MathDiv
	MathIntDiv
	MathNeg
	MathToSign
	MathToUnsign
	MathBoolAnd
	MathBoolOr
	MathBoolXor
	MathBoolNot
	MathBitAnd
	MathBitOr
	MathBitXor
	MathBitNot
	MathBitShift
	MathCeil
	MathFloor
	MathRound
	MathAbs
	MathPow
	MathHex
)

var mathNames = [...]string{
	"Add", "Sub", "Mul", "Div", "IntDiv", "Neg", "ToSign", "ToUnsign",
	"BoolAnd", "BoolOr", "BoolXor", "BoolNot", "BitAnd", "BitOr", "BitXor", "BitNot",
	"BitShift", "Ceil", "Floor", "Round", "Abs", "Pow", "Hex",
}

func (t MathType) String() string {
	if t < 0 || int(t) >= len(mathNames) {
		return "MathType(?)"
	}
	return mathNames[t]
}

// MathArgs is the operation-specific part of a Math command.
type MathArgs interface {
	String() string
	acceptsMath(MathType) bool
}

// Math: Math,<Type>,<Args...>
type Math struct {
	Type MathType
	Args MathArgs
}

// NewMath pairs a Math type with its arguments. It panics when args cannot
// describe t.
func NewMath(t MathType, args MathArgs) Math {
	invariant.NotNil(args, "args")
	invariant.Precondition(args.acceptsMath(t), "%T cannot describe Math,%s", args, t)
	return Math{Type: t, Args: args}
}

func (i Math) String() string {
	if i.Args == nil {
		return i.Type.String()
	}
	return join(i.Type.String(), i.Args.String())
}

func (i Math) accepts(k Kind) bool {
	return k == KindMath && i.Args != nil && i.Args.acceptsMath(i.Type)
}

// BitSize is the optional integer width of some Math operations. Zero means
// the width was not given.
type BitSize uint

func validBitSize(b BitSize) bool {
	return b == 0 || b == 8 || b == 16 || b == 32 || b == 64
}

func (a *argList) bits(b BitSize) {
	if b != 0 {
		a.add(strconv.FormatUint(uint64(b), 10))
	}
}

// MathArithmeticArgs serves Add, Sub, Mul and Div: <DestVar>,<Src1>,<Src2>
type MathArithmeticArgs struct {
	DestVar string
	Src1    string
	Src2    string
}

func (a MathArithmeticArgs) String() string { return join(a.DestVar, a.Src1, a.Src2) }
func (MathArithmeticArgs) acceptsMath(t MathType) bool {
	return t == MathAdd || t == MathSub || t == MathMul || t == MathDiv
}

// MathIntDivArgs: <QuotientVar>,<RemainderVar>,<Src1>,<Src2>
type MathIntDivArgs struct {
	QuotientVar  string
	RemainderVar string
	Src1         string
	Src2         string
}

func (a MathIntDivArgs) String() string {
	return join(a.QuotientVar, a.RemainderVar, a.Src1, a.Src2)
}

func (MathIntDivArgs) acceptsMath(t MathType) bool { return t == MathIntDiv }

// MathUnaryArgs serves Neg, BoolNot and Abs: <DestVar>,<Src>
type MathUnaryArgs struct {
	DestVar string
	Src     string
}

func (a MathUnaryArgs) String() string { return join(a.DestVar, a.Src) }
func (MathUnaryArgs) acceptsMath(t MathType) bool {
	return t == MathNeg || t == MathBoolNot || t == MathAbs
}

// MathSignednessArgs serves ToSign and ToUnsign: <DestVar>,<Src>[,BitSize]
type MathSignednessArgs struct {
	DestVar string
	Src     string
	BitSize BitSize
}

func (a MathSignednessArgs) String() string {
	l := argList{a.DestVar, a.Src}
	l.bits(a.BitSize)
	return l.String()
}

func (a MathSignednessArgs) acceptsMath(t MathType) bool {
	return (t == MathToSign || t == MathToUnsign) && validBitSize(a.BitSize)
}

// MathLogicArgs serves BoolAnd, BoolOr, BoolXor, BitAnd, BitOr and BitXor:
// <DestVar>,<Src1>,<Src2>
type MathLogicArgs struct {
	DestVar string
	Src1    string
	Src2    string
}

func (a MathLogicArgs) String() string { return join(a.DestVar, a.Src1, a.Src2) }
func (MathLogicArgs) acceptsMath(t MathType) bool {
	switch t {
	case MathBoolAnd, MathBoolOr, MathBoolXor, MathBitAnd, MathBitOr, MathBitXor:
		return true
	}
	return false
}

// MathBitNotArgs: <DestVar>,<Src>[,BitSize]
type MathBitNotArgs struct {
	DestVar string
	Src     string // Unsigned
	BitSize BitSize
}

func (a MathBitNotArgs) String() string {
	l := argList{a.DestVar, a.Src}
	l.bits(a.BitSize)
	return l.String()
}

func (a MathBitNotArgs) acceptsMath(t MathType) bool {
	return t == MathBitNot && validBitSize(a.BitSize)
}

// MathBitShiftArgs: <DestVar>,<Src>,<LEFT|RIGHT>,<Shift>[,BitSize][,UNSIGNED]
type MathBitShiftArgs struct {
	DestVar   string
	Src       string
	Direction string // LEFT or RIGHT, or a variable
	Shift     string
	BitSize   BitSize
	Unsigned  bool
}

func (a MathBitShiftArgs) String() string {
	l := argList{a.DestVar, a.Src, a.Direction, a.Shift}
	l.bits(a.BitSize)
	l.flag(a.Unsigned, "UNSIGNED")
	return l.String()
}

func (a MathBitShiftArgs) acceptsMath(t MathType) bool {
	return t == MathBitShift && validBitSize(a.BitSize)
}

// MathRoundArgs serves Ceil, Floor and Round: <DestVar>,<Src>,<Unit>
type MathRoundArgs struct {
	DestVar string
	Src     string
	Unit    string
}

func (a MathRoundArgs) String() string { return join(a.DestVar, a.Src, a.Unit) }
func (MathRoundArgs) acceptsMath(t MathType) bool {
	return t == MathCeil || t == MathFloor || t == MathRound
}

// MathPowArgs: <DestVar>,<Base>,<Power>
type MathPowArgs struct {
	DestVar string
	Base    string
	Power   string
}

func (a MathPowArgs) String() string { return join(a.DestVar, a.Base, a.Power) }
func (MathPowArgs) acceptsMath(t MathType) bool { return t == MathPow }

// MathHexArgs: <DestVar>,<Integer>[,BitSize]
type MathHexArgs struct {
	DestVar string
	Integer string
	BitSize BitSize
}

func (a MathHexArgs) String() string {
	l := argList{a.DestVar, a.Integer}
	l.bits(a.BitSize)
	return l.String()
}

func (a MathHexArgs) acceptsMath(t MathType) bool { return t == MathHex && validBitSize(a.BitSize) }
