package command

import (
	"fmt"
	"strings"

	"github.com/opal-lang/bakery/core/escape"
)

func quote(s string) string { return escape.QuoteEscape(s, false, false) }

func dq(s string) string { return escape.Doublequote(s) }

// Comment keeps a comment line in the section.
type Comment struct {
	Text string
}

func (c Comment) String() string { return c.Text }
func (Comment) accepts(k Kind) bool { return k == KindComment }

// Error stands in for a line that failed to parse, so the executor can report
// it at the right place.
type Error struct {
	Message string
}

func (e Error) String() string { return e.Message }
func (Error) accepts(k Kind) bool { return k == KindError }

// FileCopy: FileCopy,<SrcFile>,<DestPath>[,PRESERVE][,NOWARN][,NOREC]
type FileCopy struct {
	SrcFile  string
	DestPath string
	Preserve bool
	NoWarn   bool
	NoRec    bool
}

func (i FileCopy) String() string {
	a := argList{i.SrcFile, i.DestPath}
	a.flag(i.Preserve, "PRESERVE")
	a.flag(i.NoWarn, "NOWARN")
	a.flag(i.NoRec, "NOREC")
	return a.String()
}

func (FileCopy) accepts(k Kind) bool { return k == KindFileCopy }

// FileDelete: FileDelete,<FilePath>[,NOWARN][,NOREC]
type FileDelete struct {
	FilePath string
	NoWarn   bool
	NoRec    bool
}

func (i FileDelete) String() string {
	a := argList{i.FilePath}
	a.flag(i.NoWarn, "NOWARN")
	a.flag(i.NoRec, "NOREC")
	return a.String()
}

func (FileDelete) accepts(k Kind) bool { return k == KindFileDelete }

// FileRename serves FileRename and its alias FileMove.
type FileRename struct {
	SrcPath  string
	DestPath string
}

func (i FileRename) String() string { return join(i.SrcPath, i.DestPath) }

func (FileRename) accepts(k Kind) bool { return k == KindFileRename || k == KindFileMove }

// FileCreateBlank: FileCreateBlank,<FilePath>[,PRESERVE][,NOWARN][,UTF8|UTF16|UTF16BE|ANSI]
type FileCreateBlank struct {
	FilePath string
	Preserve bool
	NoWarn   bool
	Encoding TextEncoding
}

func (i FileCreateBlank) String() string {
	a := argList{quote(i.FilePath)}
	a.flag(i.Preserve, "PRESERVE")
	a.flag(i.NoWarn, "NOWARN")
	a.opt(i.Encoding.String())
	return a.String()
}

func (FileCreateBlank) accepts(k Kind) bool { return k == KindFileCreateBlank }

// FileSize: FileSize,<FilePath>,<DestVar>
type FileSize struct {
	FilePath string
	DestVar  string
}

func (i FileSize) String() string { return join(i.FilePath, i.DestVar) }
func (FileSize) accepts(k Kind) bool { return k == KindFileSize }

// FileVersion: FileVersion,<FilePath>,<DestVar>
type FileVersion struct {
	FilePath string
	DestVar  string
}

func (i FileVersion) String() string { return join(i.FilePath, i.DestVar) }
func (FileVersion) accepts(k Kind) bool { return k == KindFileVersion }

// DirCopy: DirCopy,<SrcDir>,<DestDir>
type DirCopy struct {
	SrcDir  string
	DestDir string
}

func (i DirCopy) String() string { return join(i.SrcDir, i.DestDir) }
func (DirCopy) accepts(k Kind) bool { return k == KindDirCopy }

// DirDelete: DirDelete,<DirPath>
type DirDelete struct {
	DirPath string
}

func (i DirDelete) String() string { return i.DirPath }
func (DirDelete) accepts(k Kind) bool { return k == KindDirDelete }

// DirMove: DirMove,<SrcDir>,<DestPath>
type DirMove struct {
	SrcDir   string
	DestPath string
}

func (i DirMove) String() string { return join(i.SrcDir, i.DestPath) }
func (DirMove) accepts(k Kind) bool { return k == KindDirMove }

// DirMake: DirMake,<DestDir>
type DirMake struct {
	DestDir string
}

func (i DirMake) String() string { return i.DestDir }
func (DirMake) accepts(k Kind) bool { return k == KindDirMake }

// DirSize: DirSize,<DirPath>,<DestVar>
type DirSize struct {
	DirPath string
	DestVar string
}

func (i DirSize) String() string { return join(i.DirPath, i.DestVar) }
func (DirSize) accepts(k Kind) bool { return k == KindDirSize }

// PathMove: PathMove,<SrcPath>,<DestPath>
type PathMove struct {
	SrcPath  string
	DestPath string
}

func (i PathMove) String() string { return join(i.SrcPath, i.DestPath) }
func (PathMove) accepts(k Kind) bool { return k == KindPathMove }

// RegHiveLoad: RegHiveLoad,<KeyPath>,<HiveFile>
type RegHiveLoad struct {
	KeyPath  string
	HiveFile string
}

func (i RegHiveLoad) String() string { return join(i.KeyPath, i.HiveFile) }
func (RegHiveLoad) accepts(k Kind) bool { return k == KindRegHiveLoad }

// RegHiveUnload: RegHiveUnload,<KeyPath>
type RegHiveUnload struct {
	KeyPath string
}

func (i RegHiveUnload) String() string { return i.KeyPath }
func (RegHiveUnload) accepts(k Kind) bool { return k == KindRegHiveUnload }

// RegRead: RegRead,<HKey>,<KeyPath>,<ValueName>,<DestVar>
type RegRead struct {
	HKey      HKey
	KeyPath   string
	ValueName string
	DestVar   string
}

func (i RegRead) String() string { return join(i.HKey.String(), i.KeyPath, i.ValueName, i.DestVar) }
func (RegRead) accepts(k Kind) bool { return k == KindRegRead }

// RegWrite: RegWrite,<HKey>,<ValueType>,<KeyPath>,<ValueName>,<ValueData|ValueDatas...>[,NOWARN]
//
// ValueDatas holds the elements of a multi-part value (REG_MULTI_SZ, or
// REG_BINARY written as separate bytes); when it is nil ValueData is used.
type RegWrite struct {
	HKey       HKey
	ValueType  RegValueType
	KeyPath    string
	ValueName  string
	ValueData  string
	ValueDatas []string
	NoWarn     bool
}

func (i RegWrite) String() string {
	a := argList{i.HKey.String(), fmt.Sprintf("0x%X", uint32(i.ValueType)), i.KeyPath, i.ValueName}
	if i.ValueDatas == nil {
		a.opt(i.ValueData)
	} else {
		a.add(i.ValueDatas...)
	}
	a.flag(i.NoWarn, "NOWARN")
	return a.String()
}

func (RegWrite) accepts(k Kind) bool { return k == KindRegWrite }

// RegWriteLegacy keeps the WinBuilder argument order, where the root key and
// value type are free text.
type RegWriteLegacy struct {
	HKey       string
	ValueType  string
	KeyPath    string
	ValueDatas []string // Value name followed by the data
	NoWarn     bool
}

func (i RegWriteLegacy) String() string {
	a := argList{i.HKey, i.ValueType, i.KeyPath}
	a.add(i.ValueDatas...)
	a.flag(i.NoWarn, "NOWARN")
	return a.String()
}

func (RegWriteLegacy) accepts(k Kind) bool { return k == KindRegWriteLegacy }

// RegDelete: RegDelete,<HKey>,<KeyPath>[,ValueName]
type RegDelete struct {
	HKey      HKey
	KeyPath   string
	ValueName string // Empty deletes the whole key
}

func (i RegDelete) String() string {
	a := argList{i.HKey.String(), i.KeyPath}
	a.opt(i.ValueName)
	return a.String()
}

func (RegDelete) accepts(k Kind) bool { return k == KindRegDelete }

// RegMulti: RegMulti,<HKey>,<KeyPath>,<ValueName>,<Type>,<Arg1>[,Arg2]
type RegMulti struct {
	HKey      HKey
	KeyPath   string
	ValueName string
	Action    RegMultiType
	Arg1      string
	Arg2      string
}

func (i RegMulti) String() string {
	a := argList{i.HKey.String(), i.KeyPath, i.ValueName, strings.ToUpper(i.Action.String()), i.Arg1}
	a.opt(i.Arg2)
	return a.String()
}

func (RegMulti) accepts(k Kind) bool { return k == KindRegMulti }

// RegImport: RegImport,<RegFile>
type RegImport struct {
	RegFile string
}

func (i RegImport) String() string { return i.RegFile }
func (RegImport) accepts(k Kind) bool { return k == KindRegImport }

// RegExport: RegExport,<HKey>,<KeyPath>,<RegFile>
type RegExport struct {
	HKey    HKey
	KeyPath string
	RegFile string
}

func (i RegExport) String() string { return join(i.HKey.String(), i.KeyPath, i.RegFile) }
func (RegExport) accepts(k Kind) bool { return k == KindRegExport }

// RegCopy: RegCopy,<SrcHKey>,<SrcKeyPath>,<DestHKey>,<DestKeyPath>
type RegCopy struct {
	SrcHKey     HKey
	SrcKeyPath  string
	DestHKey    HKey
	DestKeyPath string
}

func (i RegCopy) String() string {
	return join(i.SrcHKey.String(), i.SrcKeyPath, i.DestHKey.String(), i.DestKeyPath)
}

func (RegCopy) accepts(k Kind) bool { return k == KindRegCopy }
