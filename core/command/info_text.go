package command

// TXTAddLine: TXTAddLine,<FileName>,<Line>,<Mode>
type TXTAddLine struct {
	FileName string
	Line     string
	Mode     TXTAddLineMode
}

func (i TXTAddLine) String() string { return join(i.FileName, i.Line, string(i.Mode)) }
func (TXTAddLine) accepts(k Kind) bool { return k == KindTXTAddLine }

// TXTReplace: TXTReplace,<FileName>,<OldStr>,<NewStr>
type TXTReplace struct {
	FileName string
	OldStr   string
	NewStr   string
}

func (i TXTReplace) String() string { return join(i.FileName, i.OldStr, i.NewStr) }
func (TXTReplace) accepts(k Kind) bool { return k == KindTXTReplace }

// TXTDelLine: TXTDelLine,<FileName>,<DeleteLine>
type TXTDelLine struct {
	FileName   string
	DeleteLine string
}

func (i TXTDelLine) String() string { return join(i.FileName, i.DeleteLine) }
func (TXTDelLine) accepts(k Kind) bool { return k == KindTXTDelLine }

// TXTDelSpaces: TXTDelSpaces,<FileName>
type TXTDelSpaces struct {
	FileName string
}

func (i TXTDelSpaces) String() string { return i.FileName }
func (TXTDelSpaces) accepts(k Kind) bool { return k == KindTXTDelSpaces }

// TXTDelEmptyLines: TXTDelEmptyLines,<FileName>
type TXTDelEmptyLines struct {
	FileName string
}

func (i TXTDelEmptyLines) String() string { return i.FileName }
func (TXTDelEmptyLines) accepts(k Kind) bool { return k == KindTXTDelEmptyLines }

// INIRead: INIRead,<FileName>,<Section>,<Key>,<%DestVar%>
type INIRead struct {
	FileName string
	Section  string
	Key      string
	DestVar  string // Variable name without the surrounding percent signs
}

func (i INIRead) String() string { return join(i.FileName, i.Section, i.Key, "%"+i.DestVar+"%") }
func (INIRead) accepts(k Kind) bool { return k == KindINIRead }

// INIWrite: INIWrite,<FileName>,<Section>,<Key>,<Value>
type INIWrite struct {
	FileName string
	Section  string
	Key      string
	Value    string
}

func (i INIWrite) String() string { return join(i.FileName, i.Section, i.Key, i.Value) }
func (INIWrite) accepts(k Kind) bool { return k == KindINIWrite }

// INIDelete: INIDelete,<FileName>,<Section>,<Key>
type INIDelete struct {
	FileName string
	Section  string
	Key      string
}

func (i INIDelete) String() string { return join(i.FileName, i.Section, i.Key) }
func (INIDelete) accepts(k Kind) bool { return k == KindINIDelete }

// INIReadSection: INIReadSection,<FileName>,<Section>,<DestVar>
type INIReadSection struct {
	FileName string
	Section  string
	DestVar  string
}

func (i INIReadSection) String() string { return join(i.FileName, i.Section, i.DestVar) }
func (INIReadSection) accepts(k Kind) bool { return k == KindINIReadSection }

// INIAddSection: INIAddSection,<FileName>,<Section>
type INIAddSection struct {
	FileName string
	Section  string
}

func (i INIAddSection) String() string { return join(i.FileName, i.Section) }
func (INIAddSection) accepts(k Kind) bool { return k == KindINIAddSection }

// INIDeleteSection: INIDeleteSection,<FileName>,<Section>
type INIDeleteSection struct {
	FileName string
	Section  string
}

func (i INIDeleteSection) String() string { return join(i.FileName, i.Section) }
func (INIDeleteSection) accepts(k Kind) bool { return k == KindINIDeleteSection }

// INIWriteTextLine: INIWriteTextLine,<FileName>,<Section>,<Line>[,APPEND]
type INIWriteTextLine struct {
	FileName string
	Section  string
	Line     string
	Append   bool
}

func (i INIWriteTextLine) String() string {
	a := argList{i.FileName, i.Section, i.Line}
	a.flag(i.Append, "APPEND")
	return a.String()
}

func (INIWriteTextLine) accepts(k Kind) bool { return k == KindINIWriteTextLine }

// INIMerge: INIMerge,<SrcFile>,<DestFile>
type INIMerge struct {
	SrcFile  string
	DestFile string
}

func (i INIMerge) String() string { return join(i.SrcFile, i.DestFile) }
func (INIMerge) accepts(k Kind) bool { return k == KindINIMerge }

// Compress: Compress,<Format>,<SrcPath>,<DestArchive>[,CompressLevel][,UTF8|UTF16|UTF16BE|ANSI]
type Compress struct {
	Format      ArchiveFormat
	SrcPath     string
	DestArchive string
	Level       CompressLevel
	Encoding    TextEncoding // File name encoding inside the archive
}

func (i Compress) String() string {
	a := argList{i.Format.String(), i.SrcPath, i.DestArchive}
	a.opt(i.Level.String())
	a.opt(i.Encoding.String())
	return a.String()
}

func (Compress) accepts(k Kind) bool { return k == KindCompress }

// Decompress: Decompress,<SrcArchive>,<DestDir>[,UTF8|UTF16|UTF16BE|ANSI]
type Decompress struct {
	SrcArchive string
	DestDir    string
	Encoding   TextEncoding
}

func (i Decompress) String() string {
	a := argList{i.SrcArchive, i.DestDir}
	a.opt(i.Encoding.String())
	return a.String()
}

func (Decompress) accepts(k Kind) bool { return k == KindDecompress }

// Expand: Expand,<SrcCab>,<DestDir>[,SingleFile][,PRESERVE][,NOWARN]
//
// Preserve and NoWarn only apply when SingleFile is set.
type Expand struct {
	SrcCab     string
	DestDir    string
	SingleFile string
	Preserve   bool
	NoWarn     bool
}

func (i Expand) String() string {
	a := argList{i.SrcCab, i.DestDir}
	a.opt(i.SingleFile)
	a.flag(i.Preserve, "PRESERVE")
	a.flag(i.NoWarn, "NOWARN")
	return a.String()
}

func (Expand) accepts(k Kind) bool { return k == KindExpand }

// CopyOrExpand: CopyOrExpand,<SrcFile>,<DestPath>[,PRESERVE][,NOWARN]
type CopyOrExpand struct {
	SrcFile  string
	DestPath string
	Preserve bool
	NoWarn   bool
}

func (i CopyOrExpand) String() string {
	a := argList{i.SrcFile, i.DestPath}
	a.flag(i.Preserve, "PRESERVE")
	a.flag(i.NoWarn, "NOWARN")
	return a.String()
}

func (CopyOrExpand) accepts(k Kind) bool { return k == KindCopyOrExpand }

// WebGet serves WebGet, WebGetStatus and WebGetIfNotExist.
//
//	WebGet,<URL>,<DestPath>[,<HashType>,<HashDigest>]
//	WebGetStatus,<URL>,<DestPath>,<DestVar>[,<HashType>,<HashDigest>]
type WebGet struct {
	URL        string
	DestPath   string
	DestVar    string // Receives the HTTP status; WebGetStatus only
	HashType   HashType
	HashDigest string
}

func (i WebGet) String() string {
	a := argList{i.URL, i.DestPath}
	a.opt(i.DestVar)
	if i.HashType != "" && i.HashDigest != "" {
		a.add(string(i.HashType), i.HashDigest)
	}
	return a.String()
}

func (WebGet) accepts(k Kind) bool {
	return k == KindWebGet || k == KindWebGetStatus || k == KindWebGetIfNotExist
}

// ExtractFile: ExtractFile,<ScriptFile>,<DirName>,<FileName>,<DestDir>
type ExtractFile struct {
	ScriptFile string
	DirName    string
	FileName   string
	DestDir    string
}

func (i ExtractFile) String() string { return join(i.ScriptFile, i.DirName, i.FileName, i.DestDir) }
func (ExtractFile) accepts(k Kind) bool { return k == KindExtractFile }

// ExtractAndRun: ExtractAndRun,<ScriptFile>,<DirName>,<FileName>[,Params...]
type ExtractAndRun struct {
	ScriptFile string
	DirName    string
	FileName   string
	Params     []string
}

func (i ExtractAndRun) String() string {
	a := argList{i.ScriptFile, i.DirName, i.FileName}
	a.add(i.Params...)
	return a.String()
}

func (ExtractAndRun) accepts(k Kind) bool { return k == KindExtractAndRun }

// ExtractAllFiles: ExtractAllFiles,<ScriptFile>,<DirName>,<DestDir>
type ExtractAllFiles struct {
	ScriptFile string
	DirName    string
	DestDir    string
}

func (i ExtractAllFiles) String() string { return join(i.ScriptFile, i.DirName, i.DestDir) }
func (ExtractAllFiles) accepts(k Kind) bool { return k == KindExtractAllFiles }

// Encode: Encode,<ScriptFile>,<DirName>,<FilePath>[,Compression]
type Encode struct {
	ScriptFile  string
	DirName     string
	FilePath    string // May contain wildcards
	Compression string
}

func (i Encode) String() string {
	a := argList{i.ScriptFile, i.DirName, i.FilePath}
	a.opt(i.Compression)
	return a.String()
}

func (Encode) accepts(k Kind) bool { return k == KindEncode }
