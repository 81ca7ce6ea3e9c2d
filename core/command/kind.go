package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Kind identifies a command. Values are grouped in bands of 100 so the band of
// a kind is its value rounded down to the hundred (branch, control and system
// start at 8000).
type Kind int

const (
	KindNone Kind = iota
	KindComment
	KindError
)

// File and directory
const (
	KindFileCopy Kind = iota + 100
	KindFileDelete
	KindFileRename
	KindFileMove
	KindFileCreateBlank
	KindFileSize
	KindFileVersion
)

const (
	KindDirCopy Kind = iota + 120
	KindDirDelete
	KindDirMove
	KindDirMake
	KindDirSize
)

const KindPathMove Kind = 160

// Registry
const (
	KindRegHiveLoad Kind = iota + 200
	KindRegHiveUnload
	KindRegRead
	KindRegWrite
	KindRegDelete
	KindRegMulti
	KindRegImport
	KindRegExport
	KindRegCopy
)

const KindRegWriteLegacy Kind = 260

// Text
const (
	KindTXTAddLine Kind = iota + 300
	KindTXTDelLine
	KindTXTReplace
	KindTXTDelSpaces
	KindTXTDelEmptyLines
)

const (
	KindTXTAddLineOp Kind = iota + 380
	KindTXTReplaceOp
	KindTXTDelLineOp
)

// INI
const (
	KindINIWrite Kind = iota + 400
	KindINIRead
	KindINIDelete
	KindINIReadSection
	KindINIAddSection
	KindINIDeleteSection
	KindINIWriteTextLine
	KindINIMerge
)

const (
	KindINIWriteOp Kind = iota + 480
	KindINIReadOp
	KindINIDeleteOp
	KindINIReadSectionOp
	KindINIAddSectionOp
	KindINIDeleteSectionOp
	KindINIWriteTextLineOp
)

// Archive
const (
	KindCompress Kind = iota + 500
	KindDecompress
	KindExpand
	KindCopyOrExpand
)

// Network
const (
	KindWebGet Kind = iota + 600
	KindWebGetStatus
)

const KindWebGetIfNotExist Kind = 699

// Attachment
const (
	KindExtractFile Kind = iota + 700
	KindExtractAndRun
	KindExtractAllFiles
	KindEncode
)

// Interface
const (
	KindVisible Kind = iota + 800
	KindReadInterface
	KindWriteInterface
	KindMessage
	KindEcho
	KindEchoFile
	KindUserInput
	KindAddInterface
)

const (
	KindVisibleOp Kind = iota + 880
	KindReadInterfaceOp
	KindWriteInterfaceOp
)

// KindRetrieve is rewritten by the parser into UserInput, FileSize,
// FileVersion, DirSize or Hash. No payload accepts it.
const KindRetrieve Kind = 899

const (
	KindHash      Kind = 900
	KindStrFormat Kind = 1000
	KindMath      Kind = 1100
)

// WIM
const (
	KindWimMount Kind = iota + 1200
	KindWimUnmount
	KindWimInfo
	KindWimApply
	KindWimExtract
	KindWimExtractBulk
	KindWimCapture
	KindWimAppend
	KindWimDelete
	KindWimPathAdd
	KindWimPathDelete
	KindWimPathRename
	KindWimOptimize
	KindWimExport
)

const (
	KindWimExtractOp Kind = iota + 1280
	KindWimPathOp
)

// Branch
const (
	KindRun Kind = iota + 8000
	KindExec
	KindLoop
	KindLoopLetter
	KindIf
	KindElse
	KindBegin
	KindEnd
)

// Control
const (
	KindSet Kind = iota + 8100
	KindSetMacro
	KindAddVariables
	KindExit
	KindHalt
	KindWait
	KindBeep
)

const (
	KindGetParam  Kind = 8198
	KindPackParam Kind = 8199
)

// System
const (
	KindSystem Kind = iota + 8200
	KindShellExecute
	KindShellExecuteEx
	KindShellExecuteDelete
)

const KindMacro Kind = 9900

var kindNames = map[Kind]string{
	KindNone:    "None",
	KindComment: "Comment",
	KindError:   "Error",

	KindFileCopy:        "FileCopy",
	KindFileDelete:      "FileDelete",
	KindFileRename:      "FileRename",
	KindFileMove:        "FileMove",
	KindFileCreateBlank: "FileCreateBlank",
	KindFileSize:        "FileSize",
	KindFileVersion:     "FileVersion",
	KindDirCopy:         "DirCopy",
	KindDirDelete:       "DirDelete",
	KindDirMove:         "DirMove",
	KindDirMake:         "DirMake",
	KindDirSize:         "DirSize",
	KindPathMove:        "PathMove",

	KindRegHiveLoad:    "RegHiveLoad",
	KindRegHiveUnload:  "RegHiveUnload",
	KindRegRead:        "RegRead",
	KindRegWrite:       "RegWrite",
	KindRegDelete:      "RegDelete",
	KindRegMulti:       "RegMulti",
	KindRegImport:      "RegImport",
	KindRegExport:      "RegExport",
	KindRegCopy:        "RegCopy",
	KindRegWriteLegacy: "RegWriteLegacy",

	KindTXTAddLine:       "TXTAddLine",
	KindTXTDelLine:       "TXTDelLine",
	KindTXTReplace:       "TXTReplace",
	KindTXTDelSpaces:     "TXTDelSpaces",
	KindTXTDelEmptyLines: "TXTDelEmptyLines",
	KindTXTAddLineOp:     "TXTAddLineOp",
	KindTXTReplaceOp:     "TXTReplaceOp",
	KindTXTDelLineOp:     "TXTDelLineOp",

	KindINIWrite:           "INIWrite",
	KindINIRead:            "INIRead",
	KindINIDelete:          "INIDelete",
	KindINIReadSection:     "INIReadSection",
	KindINIAddSection:      "INIAddSection",
	KindINIDeleteSection:   "INIDeleteSection",
	KindINIWriteTextLine:   "INIWriteTextLine",
	KindINIMerge:           "INIMerge",
	KindINIWriteOp:         "INIWriteOp",
	KindINIReadOp:          "INIReadOp",
	KindINIDeleteOp:        "INIDeleteOp",
	KindINIReadSectionOp:   "INIReadSectionOp",
	KindINIAddSectionOp:    "INIAddSectionOp",
	KindINIDeleteSectionOp: "INIDeleteSectionOp",
	KindINIWriteTextLineOp: "INIWriteTextLineOp",

	KindCompress:     "Compress",
	KindDecompress:   "Decompress",
	KindExpand:       "Expand",
	KindCopyOrExpand: "CopyOrExpand",

	KindWebGet:           "WebGet",
	KindWebGetStatus:     "WebGetStatus",
	KindWebGetIfNotExist: "WebGetIfNotExist",

	KindExtractFile:     "ExtractFile",
	KindExtractAndRun:   "ExtractAndRun",
	KindExtractAllFiles: "ExtractAllFiles",
	KindEncode:          "Encode",

	KindVisible:          "Visible",
	KindReadInterface:    "ReadInterface",
	KindWriteInterface:   "WriteInterface",
	KindMessage:          "Message",
	KindEcho:             "Echo",
	KindEchoFile:         "EchoFile",
	KindUserInput:        "UserInput",
	KindAddInterface:     "AddInterface",
	KindVisibleOp:        "VisibleOp",
	KindReadInterfaceOp:  "ReadInterfaceOp",
	KindWriteInterfaceOp: "WriteInterfaceOp",
	KindRetrieve:         "Retrieve",

	KindHash:      "Hash",
	KindStrFormat: "StrFormat",
	KindMath:      "Math",

	KindWimMount:       "WimMount",
	KindWimUnmount:     "WimUnmount",
	KindWimInfo:        "WimInfo",
	KindWimApply:       "WimApply",
	KindWimExtract:     "WimExtract",
	KindWimExtractBulk: "WimExtractBulk",
	KindWimCapture:     "WimCapture",
	KindWimAppend:      "WimAppend",
	KindWimDelete:      "WimDelete",
	KindWimPathAdd:     "WimPathAdd",
	KindWimPathDelete:  "WimPathDelete",
	KindWimPathRename:  "WimPathRename",
	KindWimOptimize:    "WimOptimize",
	KindWimExport:      "WimExport",
	KindWimExtractOp:   "WimExtractOp",
	KindWimPathOp:      "WimPathOp",

	KindRun:        "Run",
	KindExec:       "Exec",
	KindLoop:       "Loop",
	KindLoopLetter: "LoopLetter",
	KindIf:         "If",
	KindElse:       "Else",
	KindBegin:      "Begin",
	KindEnd:        "End",

	KindSet:          "Set",
	KindSetMacro:     "SetMacro",
	KindAddVariables: "AddVariables",
	KindExit:         "Exit",
	KindHalt:         "Halt",
	KindWait:         "Wait",
	KindBeep:         "Beep",
	KindGetParam:     "GetParam",
	KindPackParam:    "PackParam",

	KindSystem:             "System",
	KindShellExecute:       "ShellExecute",
	KindShellExecuteEx:     "ShellExecuteEx",
	KindShellExecuteDelete: "ShellExecuteDelete",

	KindMacro: "Macro",
}

// opKinds maps each optimizable kind to the batched kind that carries a run
// of it. The three WimPath kinds share one batch.
var opKinds = map[Kind]Kind{
	KindTXTAddLine:       KindTXTAddLineOp,
	KindTXTReplace:       KindTXTReplaceOp,
	KindTXTDelLine:       KindTXTDelLineOp,
	KindINIWrite:         KindINIWriteOp,
	KindINIRead:          KindINIReadOp,
	KindINIDelete:        KindINIDeleteOp,
	KindINIReadSection:   KindINIReadSectionOp,
	KindINIAddSection:    KindINIAddSectionOp,
	KindINIDeleteSection: KindINIDeleteSectionOp,
	KindINIWriteTextLine: KindINIWriteTextLineOp,
	KindVisible:          KindVisibleOp,
	KindReadInterface:    KindReadInterfaceOp,
	KindWriteInterface:   KindWriteInterfaceOp,
	KindWimExtract:       KindWimExtractOp,
	KindWimPathAdd:       KindWimPathOp,
	KindWimPathDelete:    KindWimPathOp,
	KindWimPathRename:    KindWimPathOp,
}

var deprecatedKinds = map[Kind]bool{
	KindWebGetIfNotExist: true,
	KindExtractAndRun:    true,
	KindGetParam:         true,
	KindPackParam:        true,
}

// scriptKinds indexes the kinds a script may name, by lower-case name.
// None and the batched kinds are produced internally and never parsed.
var (
	scriptKinds     = make(map[string]Kind, len(kindNames))
	scriptKindNames []string
)

func init() {
	for k, name := range kindNames {
		if k == KindNone || k.IsOp() {
			continue
		}
		scriptKinds[strings.ToLower(name)] = k
		scriptKindNames = append(scriptKindNames, name)
	}
	sort.Strings(scriptKindNames)
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// IsDeprecated reports whether k is kept only so old scripts still run.
func (k Kind) IsDeprecated() bool { return deprecatedKinds[k] }

// IsOptimizable reports whether adjacent commands of kind k are batched.
func (k Kind) IsOptimizable() bool {
	_, ok := opKinds[k]
	return ok
}

// OpKind returns the batched kind for an optimizable kind.
func (k Kind) OpKind() (Kind, bool) {
	op, ok := opKinds[k]
	return op, ok
}

// IsOp reports whether k is a batched kind.
func (k Kind) IsOp() bool {
	for _, op := range opKinds {
		if op == k {
			return true
		}
	}
	return false
}

// Band returns the group k belongs to.
func (k Kind) Band() Band {
	return Band(int(k) / 100 * 100)
}

// Band is a group of related kinds, valued at the first kind of the group.
type Band int

const (
	BandMisc      Band = 0
	BandFile      Band = 100
	BandRegistry  Band = 200
	BandText      Band = 300
	BandINI       Band = 400
	BandArchive   Band = 500
	BandNetwork   Band = 600
	BandAttach    Band = 700
	BandInterface Band = 800
	BandHash      Band = 900
	BandString    Band = 1000
	BandMath      Band = 1100
	BandWim       Band = 1200
	BandBranch    Band = 8000
	BandControl   Band = 8100
	BandSystem    Band = 8200
	BandMacro     Band = 9900
)

var bandNames = map[Band]string{
	BandMisc:      "misc",
	BandFile:      "file",
	BandRegistry:  "registry",
	BandText:      "text",
	BandINI:       "ini",
	BandArchive:   "archive",
	BandNetwork:   "network",
	BandAttach:    "attach",
	BandInterface: "interface",
	BandHash:      "hash",
	BandString:    "string",
	BandMath:      "math",
	BandWim:       "wim",
	BandBranch:    "branch",
	BandControl:   "control",
	BandSystem:    "system",
	BandMacro:     "macro",
}

func (b Band) String() string {
	if name, ok := bandNames[b]; ok {
		return name
	}
	return "unknown"
}

// UnknownKindError is returned by ParseKind for a name no script may use.
type UnknownKindError struct {
	Name       string
	Suggestion string // Closest known name, empty if none is close
}

func (e *UnknownKindError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown command %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown command %q", e.Name)
}

// ParseKind returns the kind a script names, ignoring case.
func ParseKind(name string) (Kind, error) {
	if k, ok := scriptKinds[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return KindNone, &UnknownKindError{Name: name, Suggestion: closestName(name, scriptKindNames)}
}

// ScriptKinds returns every kind a script may name, sorted by name.
func ScriptKinds() []Kind {
	out := make([]Kind, len(scriptKindNames))
	for i, name := range scriptKindNames {
		out[i] = scriptKinds[strings.ToLower(name)]
	}
	return out
}

func closestName(target string, candidates []string) string {
	if target == "" {
		return ""
	}

	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	// RankFindFold only matches in-order subsequences, so fall back to edit
	// distance for transpositions and substitutions.
	lower := strings.ToLower(target)
	best, bestDist := "", len(target)/2+1
	for _, c := range candidates {
		d := fuzzy.LevenshteinDistance(lower, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
