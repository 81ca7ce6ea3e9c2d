package command

import "github.com/opal-lang/bakery/core/invariant"

// Visible: Visible,<%InterfaceKey%>,<Visibility>
type Visible struct {
	InterfaceKey string // Written with the surrounding percent signs
	Visibility   string // True or False, or a variable
}

func (i Visible) String() string { return join(i.InterfaceKey, i.Visibility) }
func (Visible) accepts(k Kind) bool { return k == KindVisible }

// ReadInterface: ReadInterface,<Element>,<ScriptFile>,<Section>,<Key>,<DestVar>
type ReadInterface struct {
	Element    InterfaceElement
	ScriptFile string
	Section    string
	Key        string
	DestVar    string
}

func (i ReadInterface) String() string {
	return join(i.Element.String(), i.ScriptFile, i.Section, i.Key, i.DestVar)
}

func (ReadInterface) accepts(k Kind) bool { return k == KindReadInterface }

// WriteInterface: WriteInterface,<Element>,<ScriptFile>,<Section>,<Key>,<Value>
type WriteInterface struct {
	Element    InterfaceElement
	ScriptFile string
	Section    string
	Key        string
	Value      string
}

func (i WriteInterface) String() string {
	return join(i.Element.String(), i.ScriptFile, i.Section, i.Key, i.Value)
}

func (WriteInterface) accepts(k Kind) bool { return k == KindWriteInterface }

// Message: Message,<Text>[,Action][,Timeout]
type Message struct {
	Text    string
	Action  MessageAction
	Timeout string // Seconds; text so it can hold a variable
}

func (i Message) String() string {
	a := argList{i.Text, i.Action.String()}
	a.opt(i.Timeout)
	return a.String()
}

func (Message) accepts(k Kind) bool { return k == KindMessage }

// Echo: Echo,<Message>[,WARN]
type Echo struct {
	Message string
	Warn    bool
}

func (i Echo) String() string {
	a := argList{i.Message}
	a.flag(i.Warn, "WARN")
	return a.String()
}

func (Echo) accepts(k Kind) bool { return k == KindEcho }

// EchoFile: EchoFile,<SrcFile>[,WARN][,ENCODE]
type EchoFile struct {
	SrcFile string
	Warn    bool
	Encode  bool
}

func (i EchoFile) String() string {
	a := argList{i.SrcFile}
	a.flag(i.Warn, "WARN")
	a.flag(i.Encode, "ENCODE")
	return a.String()
}

func (EchoFile) accepts(k Kind) bool { return k == KindEchoFile }

// UserInputType selects the picker UserInput shows.
type UserInputType int

const (
	UserInputDirPath UserInputType = iota
	UserInputFilePath
)

func (t UserInputType) String() string {
	if t == UserInputFilePath {
		return "FilePath"
	}
	return "DirPath"
}

// UserInput: UserInput,<DirPath|FilePath>,<InitPath>,<DestVar>
type UserInput struct {
	Type     UserInputType
	InitPath string
	DestVar  string
}

func (i UserInput) String() string { return join(i.Type.String(), i.InitPath, i.DestVar) }
func (UserInput) accepts(k Kind) bool { return k == KindUserInput }

// AddInterface: AddInterface,<ScriptFile>,<Interface>,<Prefix>
type AddInterface struct {
	ScriptFile string
	Interface  string // Section holding the extra interface controls
	Prefix     string
}

func (i AddInterface) String() string { return join(i.ScriptFile, i.Interface, i.Prefix) }
func (AddInterface) accepts(k Kind) bool { return k == KindAddInterface }

// Hash: Hash,<HashType>,<FilePath>,<DestVar>
type Hash struct {
	HashType HashType
	FilePath string
	DestVar  string
}

func (i Hash) String() string { return join(string(i.HashType), i.FilePath, i.DestVar) }
func (Hash) accepts(k Kind) bool { return k == KindHash }

// StrFormatType is the operation of a StrFormat command.
type StrFormatType int

const (
	StrIntToBytes StrFormatType = iota
	StrBytes
	StrBytesToInt
	StrHex
	StrCeil
	StrFloor
	StrRound
	StrDate
	StrFileName
	StrDirPath
	StrPath
	StrExt
	StrPathCombine
	StrInc
	StrDec
	StrMult
	StrDiv
	StrLeft
	StrRight
	StrSubStr
	StrLen
	StrLTrim
	StrRTrim
	StrCTrim
	StrNTrim
	StrUCase
	StrLCase
	StrPos
	StrPosX
	StrReplace
	StrReplaceX
	StrShortPath
	StrLongPath
	StrSplit
)

var strFormatNames = [...]string{
	"IntToBytes", "Bytes", "BytesToInt", "Hex", "Ceil", "Floor", "Round", "Date",
	"FileName", "DirPath", "Path", "Ext", "PathCombine", "Inc", "Dec", "Mult", "Div",
	"Left", "Right", "SubStr", "Len", "LTrim", "RTrim", "CTrim", "NTrim", "UCase",
	"LCase", "Pos", "PosX", "Replace", "ReplaceX", "ShortPath", "LongPath", "Split",
}

func (t StrFormatType) String() string {
	if t < 0 || int(t) >= len(strFormatNames) {
		return "StrFormatType(?)"
	}
	return strFormatNames[t]
}

// StrFormatArgs is the operation-specific part of a StrFormat command.
type StrFormatArgs interface {
	String() string
	acceptsStr(StrFormatType) bool
}

// StrFormat: StrFormat,<Type>,<Args...>
type StrFormat struct {
	Type StrFormatType
	Args StrFormatArgs
}

// NewStrFormat pairs a StrFormat type with its arguments. It panics when args
// cannot describe t.
func NewStrFormat(t StrFormatType, args StrFormatArgs) StrFormat {
	invariant.NotNil(args, "args")
	invariant.Precondition(args.acceptsStr(t), "%T cannot describe StrFormat,%s", args, t)
	return StrFormat{Type: t, Args: args}
}

func (i StrFormat) String() string {
	if i.Args == nil {
		return i.Type.String()
	}
	return join(i.Type.String(), i.Args.String())
}

func (i StrFormat) accepts(k Kind) bool {
	return k == KindStrFormat && i.Args != nil && i.Args.acceptsStr(i.Type)
}

// StrFormatIntToBytesArgs serves Bytes and IntToBytes: <Integer>,<DestVar>
type StrFormatIntToBytesArgs struct {
	ByteSize string
	DestVar  string
}

func (a StrFormatIntToBytesArgs) String() string { return join(a.ByteSize, a.DestVar) }
func (StrFormatIntToBytesArgs) acceptsStr(t StrFormatType) bool {
	return t == StrIntToBytes || t == StrBytes
}

// StrFormatBytesToIntArgs: <HumanReadable>,<DestVar>
type StrFormatBytesToIntArgs struct {
	HumanReadable string // e.g. 1.5MB
	DestVar       string
}

func (a StrFormatBytesToIntArgs) String() string { return join(a.HumanReadable, a.DestVar) }
func (StrFormatBytesToIntArgs) acceptsStr(t StrFormatType) bool { return t == StrBytesToInt }

// StrFormatHexArgs: <Integer>,<DestVar>
type StrFormatHexArgs struct {
	Integer string
	DestVar string
}

func (a StrFormatHexArgs) String() string { return join(a.Integer, a.DestVar) }
func (StrFormatHexArgs) acceptsStr(t StrFormatType) bool { return t == StrHex }

// StrFormatRoundArgs serves Ceil, Floor and Round: <SizeVar>,<RoundTo>
//
// RoundTo is a positive integer or one of K, M, G, T, P.
type StrFormatRoundArgs struct {
	SizeVar string
	RoundTo string
}

func (a StrFormatRoundArgs) String() string { return join(a.SizeVar, a.RoundTo) }
func (StrFormatRoundArgs) acceptsStr(t StrFormatType) bool {
	return t == StrCeil || t == StrFloor || t == StrRound
}

// StrFormatDateArgs: <DestVar>,<FormatString>
type StrFormatDateArgs struct {
	DestVar      string
	FormatString string
}

func (a StrFormatDateArgs) String() string { return join(a.DestVar, dq(a.FormatString)) }
func (StrFormatDateArgs) acceptsStr(t StrFormatType) bool { return t == StrDate }

// StrFormatPathArgs serves FileName, DirPath, Path and Ext: <FilePath>,<DestVar>
type StrFormatPathArgs struct {
	FilePath string
	DestVar  string
}

func (a StrFormatPathArgs) String() string { return join(dq(a.FilePath), a.DestVar) }
func (StrFormatPathArgs) acceptsStr(t StrFormatType) bool {
	return t == StrFileName || t == StrDirPath || t == StrPath || t == StrExt
}

// StrFormatPathCombineArgs: <DirPath>,<FileName>,<DestVar>
type StrFormatPathCombineArgs struct {
	DirPath  string
	FileName string
	DestVar  string
}

func (a StrFormatPathCombineArgs) String() string {
	return join(dq(a.DirPath), dq(a.FileName), a.DestVar)
}

func (StrFormatPathCombineArgs) acceptsStr(t StrFormatType) bool { return t == StrPathCombine }

// StrFormatArithmeticArgs serves Inc, Dec, Mult and Div: <DestVar>,<Integer>
type StrFormatArithmeticArgs struct {
	DestVar string
	Integer string
}

func (a StrFormatArithmeticArgs) String() string { return join(a.DestVar, dq(a.Integer)) }
func (StrFormatArithmeticArgs) acceptsStr(t StrFormatType) bool {
	return t == StrInc || t == StrDec || t == StrMult || t == StrDiv
}

// StrFormatLeftRightArgs serves Left and Right: <SrcStr>,<CutLen>,<DestVar>
type StrFormatLeftRightArgs struct {
	SrcStr  string
	CutLen  string // May be negative
	DestVar string
}

func (a StrFormatLeftRightArgs) String() string { return join(a.SrcStr, dq(a.CutLen), a.DestVar) }
func (StrFormatLeftRightArgs) acceptsStr(t StrFormatType) bool { return t == StrLeft || t == StrRight }

// StrFormatSubStrArgs: <SrcStr>,<StartPos>,<Length>,<DestVar>
type StrFormatSubStrArgs struct {
	SrcStr   string
	StartPos string // One-based
	Length   string
	DestVar  string
}

func (a StrFormatSubStrArgs) String() string {
	return join(a.SrcStr, dq(a.StartPos), dq(a.Length), a.DestVar)
}

func (StrFormatSubStrArgs) acceptsStr(t StrFormatType) bool { return t == StrSubStr }

// StrFormatLenArgs: <SrcStr>,<DestVar>
type StrFormatLenArgs struct {
	SrcStr  string
	DestVar string
}

func (a StrFormatLenArgs) String() string { return join(a.SrcStr, a.DestVar) }
func (StrFormatLenArgs) acceptsStr(t StrFormatType) bool { return t == StrLen }

// StrFormatTrimArgs serves LTrim, RTrim and CTrim: <SrcStr>,<ToTrim>,<DestVar>
//
// ToTrim is a count for LTrim and RTrim and a character set for CTrim.
type StrFormatTrimArgs struct {
	SrcStr  string
	ToTrim  string
	DestVar string
}

func (a StrFormatTrimArgs) String() string { return join(a.SrcStr, dq(a.ToTrim), a.DestVar) }
func (StrFormatTrimArgs) acceptsStr(t StrFormatType) bool {
	return t == StrLTrim || t == StrRTrim || t == StrCTrim
}

// StrFormatNTrimArgs: <SrcStr>,<DestVar>
type StrFormatNTrimArgs struct {
	SrcStr  string
	DestVar string
}

func (a StrFormatNTrimArgs) String() string { return join(a.SrcStr, a.DestVar) }
func (StrFormatNTrimArgs) acceptsStr(t StrFormatType) bool { return t == StrNTrim }

// StrFormatCaseArgs serves UCase and LCase: <SrcStr>,<DestVar>
type StrFormatCaseArgs struct {
	SrcStr  string
	DestVar string
}

func (a StrFormatCaseArgs) String() string { return join(a.SrcStr, a.DestVar) }
func (StrFormatCaseArgs) acceptsStr(t StrFormatType) bool { return t == StrUCase || t == StrLCase }

// StrFormatPosArgs serves Pos and PosX: <SrcStr>,<SubStr>,<DestVar>
type StrFormatPosArgs struct {
	SrcStr  string
	SubStr  string
	DestVar string
}

func (a StrFormatPosArgs) String() string { return join(quote(a.SrcStr), quote(a.SubStr), a.DestVar) }
func (StrFormatPosArgs) acceptsStr(t StrFormatType) bool { return t == StrPos || t == StrPosX }

// StrFormatReplaceArgs serves Replace and ReplaceX:
// <SrcStr>,<ToBeReplaced>,<ReplaceWith>,<DestVar>
type StrFormatReplaceArgs struct {
	SrcStr       string
	ToBeReplaced string
	ReplaceWith  string
	DestVar      string
}

func (a StrFormatReplaceArgs) String() string {
	return join(quote(a.SrcStr), quote(a.ToBeReplaced), quote(a.ReplaceWith), a.DestVar)
}

func (StrFormatReplaceArgs) acceptsStr(t StrFormatType) bool {
	return t == StrReplace || t == StrReplaceX
}

// StrFormatShortLongPathArgs serves ShortPath and LongPath: <SrcStr>,<DestVar>
type StrFormatShortLongPathArgs struct {
	SrcStr  string
	DestVar string
}

func (a StrFormatShortLongPathArgs) String() string { return join(quote(a.SrcStr), a.DestVar) }
func (StrFormatShortLongPathArgs) acceptsStr(t StrFormatType) bool {
	return t == StrShortPath || t == StrLongPath
}

// StrFormatSplitArgs: <SrcStr>,<Delimiter>,<Index>,<DestVar>
type StrFormatSplitArgs struct {
	SrcStr    string
	Delimiter string
	Index     string
	DestVar   string
}

func (a StrFormatSplitArgs) String() string {
	return join(quote(a.SrcStr), quote(a.Delimiter), quote(a.Index), quote(a.DestVar))
}

func (StrFormatSplitArgs) acceptsStr(t StrFormatType) bool { return t == StrSplit }
