package command

// WimMount: WimMount,<SrcWim>,<ImageIndex>,<MountDir>,<READONLY|READWRITE>
type WimMount struct {
	SrcWim      string
	ImageIndex  string
	MountDir    string
	MountOption string
}

func (i WimMount) String() string { return join(i.SrcWim, i.ImageIndex, i.MountDir, i.MountOption) }
func (WimMount) accepts(k Kind) bool { return k == KindWimMount }

// WimUnmount: WimUnmount,<MountDir>,<DISCARD|COMMIT>
type WimUnmount struct {
	MountDir      string
	UnmountOption string
}

func (i WimUnmount) String() string { return join(i.MountDir, i.UnmountOption) }
func (WimUnmount) accepts(k Kind) bool { return k == KindWimUnmount }

// WimInfo: WimInfo,<SrcWim>,<ImageIndex>,<Key>,<DestVar>
type WimInfo struct {
	SrcWim     string
	ImageIndex string
	Key        string
	DestVar    string
}

func (i WimInfo) String() string { return join(i.SrcWim, i.ImageIndex, i.Key, i.DestVar) }
func (WimInfo) accepts(k Kind) bool { return k == KindWimInfo }

// WimApply: WimApply,<SrcWim>,<ImageIndex>,<DestDir>[,Split=STR][,CHECK][,NOACL][,NOATTRIB]
type WimApply struct {
	SrcWim     string
	ImageIndex string
	DestDir    string
	Split      string // Split part pattern, e.g. install*.swm
	Check      bool
	NoACL      bool
	NoAttrib   bool
}

func (i WimApply) String() string {
	a := argList{i.SrcWim, i.ImageIndex, i.DestDir}
	a.named("Split", i.Split)
	a.flag(i.Check, "CHECK")
	a.flag(i.NoACL, "NOACL")
	a.flag(i.NoAttrib, "NOATTRIB")
	return a.String()
}

func (WimApply) accepts(k Kind) bool { return k == KindWimApply }

// WimExtract: WimExtract,<SrcWim>,<ImageIndex>,<ExtractPath>,<DestDir>[,Split=STR][,CHECK][,NOACL][,NOATTRIB]
type WimExtract struct {
	SrcWim      string
	ImageIndex  string
	ExtractPath string
	DestDir     string
	Split       string
	Check       bool
	NoACL       bool
	NoAttrib    bool
}

func (i WimExtract) String() string {
	a := argList{i.SrcWim, i.ImageIndex, i.ExtractPath, i.DestDir}
	a.named("Split", i.Split)
	a.flag(i.Check, "CHECK")
	a.flag(i.NoACL, "NOACL")
	a.flag(i.NoAttrib, "NOATTRIB")
	return a.String()
}

func (WimExtract) accepts(k Kind) bool { return k == KindWimExtract }

// WimExtractBulk: WimExtractBulk,<SrcWim>,<ImageIndex>,<ListFile>,<DestDir>[,Split=STR][,CHECK][,NOACL][,NOATTRIB][,NOERR]
type WimExtractBulk struct {
	SrcWim     string
	ImageIndex string
	ListFile   string
	DestDir    string
	Split      string
	Check      bool
	NoACL      bool
	NoAttrib   bool
	NoErr      bool
}

func (i WimExtractBulk) String() string {
	a := argList{i.SrcWim, i.ImageIndex, i.ListFile, i.DestDir}
	a.named("Split", i.Split)
	a.flag(i.Check, "CHECK")
	a.flag(i.NoACL, "NOACL")
	a.flag(i.NoAttrib, "NOATTRIB")
	a.flag(i.NoErr, "NOERR")
	return a.String()
}

func (WimExtractBulk) accepts(k Kind) bool { return k == KindWimExtractBulk }

// WimCapture: WimCapture,<SrcDir>,<DestWim>,<Compress>[,ImageName=STR][,ImageDesc=STR][,Flags=STR][,BOOT][,CHECK][,NOACL]
type WimCapture struct {
	SrcDir    string
	DestWim   string
	Compress  string // NONE, XPRESS, LZX or LZMS
	ImageName string
	ImageDesc string
	WimFlags  string
	Boot      bool
	Check     bool
	NoACL     bool
}

func (i WimCapture) String() string {
	a := argList{i.SrcDir, i.DestWim, i.Compress}
	a.named("ImageName", i.ImageName)
	a.named("ImageDesc", i.ImageDesc)
	a.named("Flags", i.WimFlags)
	a.flag(i.Boot, "BOOT")
	a.flag(i.Check, "CHECK")
	a.flag(i.NoACL, "NOACL")
	return a.String()
}

func (WimCapture) accepts(k Kind) bool { return k == KindWimCapture }

// WimAppend: WimAppend,<SrcDir>,<DestWim>[,ImageName=STR][,ImageDesc=STR][,Flags=STR][,DeltaIndex=INT][,BOOT][,CHECK][,NOACL]
type WimAppend struct {
	SrcDir     string
	DestWim    string
	ImageName  string
	ImageDesc  string
	WimFlags   string
	DeltaIndex string // Image the new one is stored as a delta of
	Boot       bool
	Check      bool
	NoACL      bool
}

func (i WimAppend) String() string {
	a := argList{i.SrcDir, i.DestWim}
	a.named("ImageName", i.ImageName)
	a.named("ImageDesc", i.ImageDesc)
	a.named("Flags", i.WimFlags)
	a.named("DeltaIndex", i.DeltaIndex)
	a.flag(i.Boot, "BOOT")
	a.flag(i.Check, "CHECK")
	a.flag(i.NoACL, "NOACL")
	return a.String()
}

func (WimAppend) accepts(k Kind) bool { return k == KindWimAppend }

// WimDelete: WimDelete,<SrcWim>,<ImageIndex>[,CHECK]
type WimDelete struct {
	SrcWim     string
	ImageIndex string
	Check      bool
}

func (i WimDelete) String() string {
	a := argList{i.SrcWim, i.ImageIndex}
	a.flag(i.Check, "CHECK")
	return a.String()
}

func (WimDelete) accepts(k Kind) bool { return k == KindWimDelete }

// WimPathAdd: WimPathAdd,<WimFile>,<ImageIndex>,<SrcPath>,<DestPath>[,CHECK][,NOACL][,PRESERVE][,REBUILD]
//
// SrcPath and DestPath are both files or both directories.
type WimPathAdd struct {
	WimFile    string
	ImageIndex string
	SrcPath    string
	DestPath   string
	Check      bool
	NoACL      bool
	Preserve   bool
	Rebuild    bool
}

func (i WimPathAdd) String() string {
	a := argList{i.WimFile, i.ImageIndex, i.SrcPath, i.DestPath}
	a.flag(i.Check, "CHECK")
	a.flag(i.NoACL, "NOACL")
	a.flag(i.Preserve, "PRESERVE")
	a.flag(i.Rebuild, "REBUILD")
	return a.String()
}

func (WimPathAdd) accepts(k Kind) bool { return k == KindWimPathAdd }

// WimPathDelete: WimPathDelete,<WimFile>,<ImageIndex>,<Path>[,CHECK][,REBUILD]
type WimPathDelete struct {
	WimFile    string
	ImageIndex string
	Path       string
	Check      bool
	Rebuild    bool
}

func (i WimPathDelete) String() string {
	a := argList{i.WimFile, i.ImageIndex, i.Path}
	a.flag(i.Check, "CHECK")
	a.flag(i.Rebuild, "REBUILD")
	return a.String()
}

func (WimPathDelete) accepts(k Kind) bool { return k == KindWimPathDelete }

// WimPathRename: WimPathRename,<WimFile>,<ImageIndex>,<SrcPath>,<DestPath>[,CHECK][,REBUILD]
type WimPathRename struct {
	WimFile    string
	ImageIndex string
	SrcPath    string
	DestPath   string
	Check      bool
	Rebuild    bool
}

func (i WimPathRename) String() string {
	a := argList{i.WimFile, i.ImageIndex, i.SrcPath, i.DestPath}
	a.flag(i.Check, "CHECK")
	a.flag(i.Rebuild, "REBUILD")
	return a.String()
}

func (WimPathRename) accepts(k Kind) bool { return k == KindWimPathRename }

// WimOptimize: WimOptimize,<WimFile>[,Recomp=STR][,CHECK|NOCHECK]
type WimOptimize struct {
	WimFile    string
	Recompress string // KEEP, NONE, XPRESS, LZX or LZMS
	Check      CheckMode
}

func (i WimOptimize) String() string {
	a := argList{i.WimFile}
	a.named("Recomp", i.Recompress)
	a.opt(i.Check.flag())
	return a.String()
}

func (WimOptimize) accepts(k Kind) bool { return k == KindWimOptimize }

// WimExport: WimExport,<SrcWim>,<ImageIndex>,<DestWim>[,ImageName=STR][,ImageDesc=STR][,Split=STR][,Recomp=STR][,BOOT][,CHECK|NOCHECK]
type WimExport struct {
	SrcWim     string
	ImageIndex string
	DestWim    string
	ImageName  string
	ImageDesc  string
	Split      string
	Recompress string
	Boot       bool
	Check      CheckMode
}

func (i WimExport) String() string {
	a := argList{i.SrcWim, i.ImageIndex, i.DestWim}
	a.named("ImageName", i.ImageName)
	a.named("ImageDesc", i.ImageDesc)
	a.named("Split", i.Split)
	a.named("Recomp", i.Recompress)
	a.flag(i.Boot, "BOOT")
	a.opt(i.Check.flag())
	return a.String()
}

func (WimExport) accepts(k Kind) bool { return k == KindWimExport }
