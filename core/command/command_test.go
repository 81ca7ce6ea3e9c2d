package command

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var testLoc = Location{Script: "Build.script", Section: "Process", Line: 4}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "Build.script [Process] line 5", testLoc.String())
}

func TestNew(t *testing.T) {
	c := New("FileCopy,a,b", testLoc, KindFileCopy, FileCopy{SrcFile: "a", DestPath: "b"})

	assert.Equal(t, "FileCopy,a,b", c.Raw())
	assert.Equal(t, "FileCopy,a,b", c.String())
	assert.Equal(t, KindFileCopy, c.Kind())
	assert.Equal(t, testLoc, c.Location())
	assert.Equal(t, FileCopy{SrcFile: "a", DestPath: "b"}, c.Info())
}

func TestNewRejectsMismatchedPayload(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		info Info
	}{
		{"wrong payload", KindFileCopy, FileDelete{FilePath: "a"}},
		{"nil payload", KindFileCopy, nil},
		{"undeclared kind", Kind(42), Comment{}},
		{"retrieve has no payload", KindRetrieve, UserInput{}},
		{"op payload outside batch", KindFileCopy, Op{}},
		{"empty op", KindINIWriteOp, Op{}},
		{"strformat pairing", KindStrFormat, StrFormat{Type: StrLen, Args: StrFormatCaseArgs{}}},
		{"math pairing", KindMath, Math{Type: MathAdd, Args: MathUnaryArgs{}}},
		{"math bit size", KindMath, Math{Type: MathHex, Args: MathHexArgs{BitSize: 12}}},
		{"system pairing", KindSystem, System{Type: SystemIsAdmin, Args: SystemBareArgs{}}},
		{"on exit without command", KindSystem, System{Type: SystemOnBuildExit, Args: SystemOnExitArgs{}}},
		{"if payload on else", KindElse, &If{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { New("x", testLoc, tt.kind, tt.info) })
		})
	}
}

func TestSharedPayloads(t *testing.T) {
	tests := []struct {
		info  Info
		kinds []Kind
	}{
		{FileRename{}, []Kind{KindFileRename, KindFileMove}},
		{WebGet{}, []Kind{KindWebGet, KindWebGetStatus, KindWebGetIfNotExist}},
		{RunExec{}, []Kind{KindRun, KindExec}},
		{Loop{}, []Kind{KindLoop, KindLoopLetter}},
		{Bare{}, []Kind{KindBegin, KindEnd}},
		{ShellExecute{}, []Kind{KindShellExecute, KindShellExecuteEx, KindShellExecuteDelete}},
	}

	for _, tt := range tests {
		for _, k := range tt.kinds {
			assert.True(t, tt.info.accepts(k), "%T should accept %s", tt.info, k)
		}
		assert.False(t, tt.info.accepts(KindComment), "%T should not accept Comment", tt.info)
	}
}

func TestFormat(t *testing.T) {
	onExit := New("Echo,Bye", testLoc, KindEcho, Echo{Message: "Bye"})

	tests := []struct {
		name string
		kind Kind
		info Info
		want string
	}{
		// File and directory
		{"file copy flags", KindFileCopy, FileCopy{SrcFile: "a.txt", DestPath: "B", Preserve: true, NoRec: true}, "FileCopy,a.txt,B,PRESERVE,NOREC"},
		{"file delete", KindFileDelete, FileDelete{FilePath: "*.tmp", NoWarn: true}, "FileDelete,*.tmp,NOWARN"},
		{"file move alias", KindFileMove, FileRename{SrcPath: "a", DestPath: "b"}, "FileMove,a,b"},
		{"file create blank quoted", KindFileCreateBlank, FileCreateBlank{FilePath: `C:\My Dir\a.txt`, Encoding: EncodingUTF16}, `FileCreateBlank,"C:\My Dir\a.txt",UTF16`},
		{"dir size", KindDirSize, DirSize{DirPath: "D", DestVar: "%S%"}, "DirSize,D,%S%"},

		// Registry
		{"reg write dword", KindRegWrite, RegWrite{HKey: HKeyLocalMachine, ValueType: RegDWord, KeyPath: `Software\X`, ValueName: "Count", ValueData: "1", NoWarn: true}, `RegWrite,HKLM,0x4,Software\X,Count,1,NOWARN`},
		{"reg write multi", KindRegWrite, RegWrite{HKey: HKeyCurrentUser, ValueType: RegMultiString, KeyPath: "Key", ValueName: "Name", ValueDatas: []string{"a", "b"}}, "RegWrite,HKCU,0x7,Key,Name,a,b"},
		{"reg write no data", KindRegWrite, RegWrite{HKey: HKeyCurrentUser, ValueType: RegNone, KeyPath: "Key", ValueName: "Name"}, "RegWrite,HKCU,0x0,Key,Name"},
		{"reg write legacy", KindRegWriteLegacy, RegWriteLegacy{HKey: "HKLM", ValueType: "0x1", KeyPath: "Key", ValueDatas: []string{"Name", "Data"}}, "RegWriteLegacy,HKLM,0x1,Key,Name,Data"},
		{"reg delete key", KindRegDelete, RegDelete{HKey: HKeyCurrentUser, KeyPath: "Key"}, "RegDelete,HKCU,Key"},
		{"reg multi", KindRegMulti, RegMulti{HKey: HKeyLocalMachine, KeyPath: "Key", ValueName: "Name", Action: RegMultiBefore, Arg1: "x", Arg2: "y"}, "RegMulti,HKLM,Key,Name,BEFORE,x,y"},
		{"reg copy", KindRegCopy, RegCopy{SrcHKey: HKeyUsers, SrcKeyPath: "A", DestHKey: HKeyCurrentConfig, DestKeyPath: "B"}, "RegCopy,HKU,A,HKCC,B"},

		// Text and INI
		{"txt add line", KindTXTAddLine, TXTAddLine{FileName: "f", Line: "line", Mode: TXTAppend}, "TXTAddLine,f,line,Append"},
		{"ini read", KindINIRead, INIRead{FileName: "f", Section: "S", Key: "K", DestVar: "Dest"}, "INIRead,f,S,K,%Dest%"},
		{"ini write text line", KindINIWriteTextLine, INIWriteTextLine{FileName: "f", Section: "S", Line: "L", Append: true}, "INIWriteTextLine,f,S,L,APPEND"},

		// Archive, network and attachments
		{"compress", KindCompress, Compress{Format: ArchiveZip, SrcPath: "src", DestArchive: "dest.zip", Level: CompressBest, Encoding: EncodingUTF8}, "Compress,Zip,src,dest.zip,BEST,UTF8"},
		{"compress defaults", KindCompress, Compress{Format: ArchiveZip, SrcPath: "src", DestArchive: "dest.zip"}, "Compress,Zip,src,dest.zip"},
		{"expand single file", KindExpand, Expand{SrcCab: "a.cab", DestDir: "D", SingleFile: "x.dll", Preserve: true}, "Expand,a.cab,D,x.dll,PRESERVE"},
		{"web get status with hash", KindWebGetStatus, WebGet{URL: "http://x", DestPath: "d", DestVar: "%S%", HashType: HashSHA256, HashDigest: "ab"}, "WebGetStatus,http://x,d,%S%,SHA256,ab"},
		{"web get partial hash", KindWebGet, WebGet{URL: "http://x", DestPath: "d", HashType: HashMD5}, "WebGet,http://x,d"},
		{"extract and run", KindExtractAndRun, ExtractAndRun{ScriptFile: "s", DirName: "D", FileName: "a.exe", Params: []string{"/q"}}, "ExtractAndRun,s,D,a.exe,/q"},

		// Interface
		{"message", KindMessage, Message{Text: "Hi", Action: MessageWarning, Timeout: "5"}, "Message,Hi,Warning,5"},
		{"read interface", KindReadInterface, ReadInterface{Element: ElementPosX, ScriptFile: "s", Section: "Interface", Key: "pTextBox1", DestVar: "%X%"}, "ReadInterface,PosX,s,Interface,pTextBox1,%X%"},
		{"user input", KindUserInput, UserInput{Type: UserInputFilePath, InitPath: `C:\`, DestVar: "%P%"}, `UserInput,FilePath,C:\,%P%`},
		{"hash", KindHash, Hash{HashType: HashSHA1, FilePath: "f", DestVar: "%H%"}, "Hash,SHA1,f,%H%"},
		{"str format path combine", KindStrFormat, NewStrFormat(StrPathCombine, StrFormatPathCombineArgs{DirPath: `C:\My Dir`, FileName: "a.txt", DestVar: "%D%"}), `StrFormat,PathCombine,"C:\My Dir",a.txt,%D%`},
		{"str format replace", KindStrFormat, NewStrFormat(StrReplace, StrFormatReplaceArgs{SrcStr: "a,b", ToBeReplaced: ",", ReplaceWith: " ", DestVar: "%D%"}), `StrFormat,Replace,"a,b",","," ",%D%`},
		{"math bit shift", KindMath, NewMath(MathBitShift, MathBitShiftArgs{DestVar: "%D%", Src: "1", Direction: "LEFT", Shift: "2", BitSize: 32, Unsigned: true}), "Math,BitShift,%D%,1,LEFT,2,32,UNSIGNED"},
		{"math int div", KindMath, NewMath(MathIntDiv, MathIntDivArgs{QuotientVar: "%Q%", RemainderVar: "%R%", Src1: "7", Src2: "2"}), "Math,IntDiv,%Q%,%R%,7,2"},
		{"math to sign default width", KindMath, NewMath(MathToSign, MathSignednessArgs{DestVar: "%D%", Src: "255"}), "Math,ToSign,%D%,255"},

		// WIM
		{"wim apply", KindWimApply, WimApply{SrcWim: "a.wim", ImageIndex: "1", DestDir: "D", Split: "a*.swm", Check: true, NoACL: true}, "WimApply,a.wim,1,D,Split=a*.swm,CHECK,NOACL"},
		{"wim extract", KindWimExtract, WimExtract{SrcWim: "a.wim", ImageIndex: "1", ExtractPath: `\Windows`, DestDir: "D", NoAttrib: true}, `WimExtract,a.wim,1,\Windows,D,NOATTRIB`},
		{"wim capture", KindWimCapture, WimCapture{SrcDir: "S", DestWim: "a.wim", Compress: "LZX", ImageName: "Win", Boot: true}, "WimCapture,S,a.wim,LZX,ImageName=Win,BOOT"},
		{"wim append", KindWimAppend, WimAppend{SrcDir: "S", DestWim: "a.wim", ImageDesc: "Desc", DeltaIndex: "1", NoACL: true}, "WimAppend,S,a.wim,ImageDesc=Desc,DeltaIndex=1,NOACL"},
		{"wim path add", KindWimPathAdd, WimPathAdd{WimFile: "a.wim", ImageIndex: "1", SrcPath: "S", DestPath: "D", Check: true, NoACL: true, Preserve: true, Rebuild: true}, "WimPathAdd,a.wim,1,S,D,CHECK,NOACL,PRESERVE,REBUILD"},
		{"wim optimize", KindWimOptimize, WimOptimize{WimFile: "a.wim", Recompress: "LZMS", Check: CheckOff}, "WimOptimize,a.wim,Recomp=LZMS,NOCHECK"},
		{"wim export", KindWimExport, WimExport{SrcWim: "a.wim", ImageIndex: "1", DestWim: "b.wim", Split: "b*.swm", Boot: true, Check: CheckOn}, "WimExport,a.wim,1,b.wim,Split=b*.swm,BOOT,CHECK"},

		// Control and system
		{"exec with params", KindExec, RunExec{ScriptFile: "f", SectionName: "S", Params: []string{"a", "b"}}, "Exec,f,S,a,b"},
		{"loop break", KindLoop, Loop{Break: true, ScriptFile: "ignored"}, "Loop,BREAK"},
		{"loop letter", KindLoopLetter, Loop{ScriptFile: "f", SectionName: "S", StartIdx: "C", EndIdx: "Z"}, "LoopLetter,f,S,C,Z"},
		{"begin", KindBegin, Bare{}, "Begin"},
		{"set global", KindSet, Set{VarKey: "A", VarValue: "1", Global: true}, "Set,%A%,1,GLOBAL"},
		{"set macro permanent wins", KindSetMacro, SetMacro{MacroName: "M", MacroCommand: "Echo", Global: true, Permanent: true}, "SetMacro,M,Echo,PERMANENT"},
		{"pack param", KindPackParam, PackParam{StartIndex: "2", DestVar: "%P%", VarCount: "%C%"}, "PackParam,2,%P%,%C%"},
		{"exit", KindExit, Exit{Message: "Done", NoWarn: true}, "Exit,Done,NOWARN"},
		{"beep", KindBeep, Beep{Type: BeepError}, "Beep,Error"},
		{"system free space", KindSystem, NewSystem(SystemGetFreeSpace, SystemGetFreeSpaceArgs{Path: `C:\`, DestVar: "%F%"}), `System,GetFreeSpace,C:\,%F%`},
		{"system bare", KindSystem, NewSystem(SystemRefreshInterface, SystemBareArgs{}), "System,RefreshInterface"},
		{"system on build exit", KindSystem, NewSystem(SystemOnBuildExit, SystemOnExitArgs{Cmd: onExit}), "System,OnBuildExit,Echo,Bye"},
		{"system save log", KindSystem, NewSystem(SystemSaveLog, SystemSaveLogArgs{DestPath: "log.html"}), "System,SaveLog,log.html"},
		{"shell execute gap", KindShellExecute, ShellExecute{Action: "Open", FilePath: "cmd.exe", WorkDir: `C:\`}, `ShellExecute,Open,cmd.exe,,C:\`},
		{"shell execute bare", KindShellExecuteEx, ShellExecute{Action: "Hide", FilePath: "a.exe"}, "ShellExecuteEx,Hide,a.exe"},
		{"macro", KindMacro, Macro{MacroType: "MyMacro", Args: []string{"1", "2"}}, "Macro,MyMacro,1,2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.info.accepts(tt.kind))
			assert.Equal(t, tt.want, Format(tt.kind, tt.info))
		})
	}
}

func TestSubTypeConstructorsPanic(t *testing.T) {
	assert.Panics(t, func() { NewStrFormat(StrLen, StrFormatCaseArgs{}) })
	assert.Panics(t, func() { NewStrFormat(StrLen, nil) })
	assert.Panics(t, func() { NewMath(MathPow, MathUnaryArgs{}) })
	assert.Panics(t, func() { NewMath(MathBitNot, MathBitNotArgs{BitSize: 7}) })
	assert.Panics(t, func() { NewSystem(SystemLoad, SystemSaveLogArgs{}) })
	assert.NotPanics(t, func() { NewMath(MathBitNot, MathBitNotArgs{BitSize: 64}) })
}

func TestBatch(t *testing.T) {
	w1 := New("INIWrite,a.ini,S,K1,1", testLoc, KindINIWrite, INIWrite{FileName: "a.ini", Section: "S", Key: "K1", Value: "1"})
	loc2 := testLoc
	loc2.Line++
	w2 := New("INIWrite,a.ini,S,K2,2", loc2, KindINIWrite, INIWrite{FileName: "a.ini", Section: "S", Key: "K2", Value: "2"})

	cmds := []*Command{w1, w2}
	b := Batch(KindINIWriteOp, cmds)

	assert.Equal(t, KindINIWriteOp, b.Kind())
	assert.Equal(t, testLoc, b.Location())
	assert.Equal(t, "INIWrite,a.ini,S,K1,1\nINIWrite,a.ini,S,K2,2", b.Raw())

	op, ok := b.Info().(Op)
	require.True(t, ok)
	assert.Equal(t, 2, op.Len())
	assert.Equal(t, "INIWrite,a.ini,S,K1,1\nINIWrite,a.ini,S,K2,2", op.String())

	// The batch references the original commands but not the caller's slice.
	got := op.Commands()
	require.Len(t, got, 2)
	assert.Same(t, w1, got[0])
	assert.Same(t, w2, got[1])
	cmds[0] = w2
	assert.Same(t, w1, op.Commands()[0])
}

func TestBatchWimPathFamily(t *testing.T) {
	add := New("WimPathAdd", testLoc, KindWimPathAdd, WimPathAdd{WimFile: "a.wim"})
	del := New("WimPathDelete", testLoc, KindWimPathDelete, WimPathDelete{WimFile: "a.wim"})
	ren := New("WimPathRename", testLoc, KindWimPathRename, WimPathRename{WimFile: "a.wim"})

	b := Batch(KindWimPathOp, []*Command{add, del, ren})
	kinds := make([]Kind, 0, 3)
	for _, c := range b.Info().(Op).Commands() {
		kinds = append(kinds, c.Kind())
	}
	if diff := cmp.Diff([]Kind{KindWimPathAdd, KindWimPathDelete, KindWimPathRename}, kinds); diff != "" {
		t.Errorf("batched kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestBatchPanics(t *testing.T) {
	w := New("INIWrite", testLoc, KindINIWrite, INIWrite{})
	d := New("INIDelete", testLoc, KindINIDelete, INIDelete{})

	assert.Panics(t, func() { Batch(KindINIWrite, []*Command{w}) }, "not a batched kind")
	assert.Panics(t, func() { Batch(KindINIWriteOp, nil) }, "empty")
	assert.Panics(t, func() { Batch(KindINIWriteOp, []*Command{w, d}) }, "mixed kinds")
	assert.Panics(t, func() { Batch(KindINIWriteOp, []*Command{w, nil}) }, "nil command")
}

func TestTextEncoding(t *testing.T) {
	for _, flag := range []string{"UTF8", "utf16", "UTF16BE", "ansi"} {
		e, ok := ParseTextEncoding(flag)
		require.True(t, ok, flag)
		assert.NotEqual(t, EncodingDefault, e)
	}
	_, ok := ParseTextEncoding("")
	assert.False(t, ok)

	assert.Equal(t, unicode.UTF8, EncodingDefault.Encoding())
	assert.Equal(t, unicode.UTF8, EncodingUTF8.Encoding())
	assert.Equal(t, charmap.Windows1252, EncodingANSI.Encoding())

	out, err := EncodingUTF16.Encoding().NewEncoder().String("A")
	require.NoError(t, err)
	assert.Equal(t, "\xff\xfeA\x00", out)

	out, err = EncodingUTF16BE.Encoding().NewEncoder().String("A")
	require.NoError(t, err)
	assert.Equal(t, "\xfe\xff\x00A", out)
}

func TestParseHKey(t *testing.T) {
	tests := []struct {
		in   string
		want HKey
		ok   bool
	}{
		{"HKLM", HKeyLocalMachine, true},
		{"hkey_local_machine", HKeyLocalMachine, true},
		{"HKCU", HKeyCurrentUser, true},
		{"HKEY_CLASSES_ROOT", HKeyClassesRoot, true},
		{"HKU", HKeyUsers, true},
		{"HKCC", HKeyCurrentConfig, true},
		{"", HKeyNone, false},
		{"HKXX", HKeyNone, false},
	}

	for _, tt := range tests {
		got, ok := ParseHKey(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
