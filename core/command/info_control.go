package command

import (
	"github.com/opal-lang/bakery/core/invariant"
)

// RunExec serves Run and Exec: <ScriptFile>,<Section>[,Params...]
type RunExec struct {
	ScriptFile  string
	SectionName string
	Params      []string
}

func (i RunExec) String() string {
	a := argList{i.ScriptFile, i.SectionName}
	a.add(i.Params...)
	return a.String()
}

func (RunExec) accepts(k Kind) bool { return k == KindRun || k == KindExec }

// Loop serves Loop and LoopLetter.
//
//	Loop,<ScriptFile>,<Section>,<StartIndex>,<EndIndex>[,Params...]
//	Loop,BREAK
type Loop struct {
	Break       bool
	ScriptFile  string
	SectionName string
	StartIdx    string // A drive letter for LoopLetter
	EndIdx      string
	Params      []string
}

func (i Loop) String() string {
	if i.Break {
		return "BREAK"
	}
	a := argList{i.ScriptFile, i.SectionName, i.StartIdx, i.EndIdx}
	a.add(i.Params...)
	return a.String()
}

func (Loop) accepts(k Kind) bool { return k == KindLoop || k == KindLoopLetter }

// Bare is the payload of commands without arguments, Begin and End.
type Bare struct{}

func (Bare) String() string { return "" }
func (Bare) accepts(k Kind) bool { return k == KindBegin || k == KindEnd }

// Set: Set,<%VarKey%>,<VarValue>[,GLOBAL|PERMANENT]
type Set struct {
	VarKey    string // Name without percent signs
	VarValue  string
	Global    bool
	Permanent bool
}

func (i Set) String() string {
	a := argList{"%" + i.VarKey + "%", i.VarValue}
	a.flag(i.Global, "GLOBAL")
	a.flag(i.Permanent, "PERMANENT")
	return a.String()
}

func (Set) accepts(k Kind) bool { return k == KindSet }

// SetMacro: SetMacro,<MacroName>,<MacroCommand>[,GLOBAL|PERMANENT]
type SetMacro struct {
	MacroName    string
	MacroCommand string
	Global       bool
	Permanent    bool
}

func (i SetMacro) String() string {
	a := argList{i.MacroName, i.MacroCommand}
	switch {
	case i.Permanent:
		a.add("PERMANENT")
	case i.Global:
		a.add("GLOBAL")
	}
	return a.String()
}

func (SetMacro) accepts(k Kind) bool { return k == KindSetMacro }

// AddVariables: AddVariables,<ScriptFile>,<Section>[,GLOBAL]
type AddVariables struct {
	ScriptFile  string
	SectionName string
	Global      bool
}

func (i AddVariables) String() string {
	a := argList{i.ScriptFile, i.SectionName}
	a.flag(i.Global, "GLOBAL")
	return a.String()
}

func (AddVariables) accepts(k Kind) bool { return k == KindAddVariables }

// GetParam: GetParam,<Index>,<DestVar>
type GetParam struct {
	Index   string
	DestVar string
}

func (i GetParam) String() string { return join(i.Index, i.DestVar) }
func (GetParam) accepts(k Kind) bool { return k == KindGetParam }

// PackParam: PackParam,<StartIndex>,<DestVar>[,VarCount]
type PackParam struct {
	StartIndex string
	DestVar    string
	VarCount   string
}

func (i PackParam) String() string {
	a := argList{i.StartIndex, i.DestVar}
	a.opt(i.VarCount)
	return a.String()
}

func (PackParam) accepts(k Kind) bool { return k == KindPackParam }

// Exit: Exit,<Message>[,NOWARN]
type Exit struct {
	Message string
	NoWarn  bool
}

func (i Exit) String() string {
	a := argList{i.Message}
	a.flag(i.NoWarn, "NOWARN")
	return a.String()
}

func (Exit) accepts(k Kind) bool { return k == KindExit }

// Halt: Halt,<Message>
type Halt struct {
	Message string
}

func (i Halt) String() string { return i.Message }
func (Halt) accepts(k Kind) bool { return k == KindHalt }

// Wait: Wait,<Second>
type Wait struct {
	Second string
}

func (i Wait) String() string { return i.Second }
func (Wait) accepts(k Kind) bool { return k == KindWait }

// Beep: Beep,<Type>
type Beep struct {
	Type BeepType
}

func (i Beep) String() string { return i.Type.String() }
func (Beep) accepts(k Kind) bool { return k == KindBeep }

// SystemType is the operation of a System command.
type SystemType int

const (
	SystemCursor SystemType = iota
	SystemErrorOff
	SystemGetEnv
	SystemGetFreeDrive
	SystemGetFreeSpace
	SystemIsAdmin
	SystemLog
	SystemOnBuildExit
	SystemOnScriptExit
	SystemRefreshInterface
	SystemLoadAll
	SystemRescanScripts
	SystemLoad
	SystemSaveLog
	SystemSetLocal
	SystemEndLocal
	SystemHasUAC
	SystemFileRedirect
	SystemRegRedirect
	SystemRebuildVars
)

var systemNames = [...]string{
	"Cursor", "ErrorOff", "GetEnv", "GetFreeDrive", "GetFreeSpace", "IsAdmin",
	"Log", "OnBuildExit", "OnScriptExit", "RefreshInterface", "LoadAll",
	"RescanScripts", "Load", "SaveLog", "SetLocal", "EndLocal", "HasUAC",
	"FileRedirect", "RegRedirect", "RebuildVars",
}

func (t SystemType) String() string {
	if t < 0 || int(t) >= len(systemNames) {
		return "SystemType(?)"
	}
	return systemNames[t]
}

// SystemArgs is the operation-specific part of a System command.
type SystemArgs interface {
	String() string
	acceptsSystem(SystemType) bool
}

// System: System,<Type>[,Args...]
type System struct {
	Type SystemType
	Args SystemArgs
}

// NewSystem pairs a System type with its arguments. It panics when args cannot
// describe t.
func NewSystem(t SystemType, args SystemArgs) System {
	invariant.NotNil(args, "args")
	invariant.Precondition(args.acceptsSystem(t), "%T cannot describe System,%s", args, t)
	return System{Type: t, Args: args}
}

func (i System) String() string {
	a := argList{i.Type.String()}
	if i.Args != nil {
		a.opt(i.Args.String())
	}
	return a.String()
}

func (i System) accepts(k Kind) bool {
	return k == KindSystem && i.Args != nil && i.Args.acceptsSystem(i.Type)
}

// SystemCursorArgs: Cursor,<WAIT|NORMAL>
type SystemCursorArgs struct {
	IconKind string
}

func (a SystemCursorArgs) String() string { return a.IconKind }
func (SystemCursorArgs) acceptsSystem(t SystemType) bool { return t == SystemCursor }

// SystemErrorOffArgs: ErrorOff[,Lines]
type SystemErrorOffArgs struct {
	Lines string // Empty means one line
}

func (a SystemErrorOffArgs) String() string { return a.Lines }
func (SystemErrorOffArgs) acceptsSystem(t SystemType) bool { return t == SystemErrorOff }

// SystemGetEnvArgs: GetEnv,<EnvVar>,<DestVar>
type SystemGetEnvArgs struct {
	EnvVarName string
	DestVar    string
}

func (a SystemGetEnvArgs) String() string { return join(a.EnvVarName, a.DestVar) }
func (SystemGetEnvArgs) acceptsSystem(t SystemType) bool { return t == SystemGetEnv }

// SystemDestVarArgs serves GetFreeDrive, IsAdmin and HasUAC: <DestVar>
type SystemDestVarArgs struct {
	DestVar string
}

func (a SystemDestVarArgs) String() string { return a.DestVar }
func (SystemDestVarArgs) acceptsSystem(t SystemType) bool {
	return t == SystemGetFreeDrive || t == SystemIsAdmin || t == SystemHasUAC
}

// SystemGetFreeSpaceArgs: GetFreeSpace,<Path>,<DestVar>
type SystemGetFreeSpaceArgs struct {
	Path    string
	DestVar string
}

func (a SystemGetFreeSpaceArgs) String() string { return join(a.Path, a.DestVar) }
func (SystemGetFreeSpaceArgs) acceptsSystem(t SystemType) bool { return t == SystemGetFreeSpace }

// SystemOnExitArgs serves OnBuildExit and OnScriptExit, which register a
// command to run when the build or the script ends.
type SystemOnExitArgs struct {
	Cmd *Command
}

func (a SystemOnExitArgs) String() string {
	if a.Cmd == nil {
		return ""
	}
	return Format(a.Cmd.kind, a.Cmd.info)
}

func (a SystemOnExitArgs) acceptsSystem(t SystemType) bool {
	return a.Cmd != nil && (t == SystemOnBuildExit || t == SystemOnScriptExit)
}

// SystemBareArgs serves the types that take no arguments.
type SystemBareArgs struct{}

func (SystemBareArgs) String() string { return "" }
func (SystemBareArgs) acceptsSystem(t SystemType) bool {
	switch t {
	case SystemRefreshInterface, SystemLoadAll, SystemRescanScripts, SystemSetLocal, SystemEndLocal:
		return true
	}
	return false
}

// SystemLoadArgs: Load,<FilePath>[,NOREC]
type SystemLoadArgs struct {
	FilePath string
	NoRec    bool
}

func (a SystemLoadArgs) String() string {
	l := argList{a.FilePath}
	l.flag(a.NoRec, "NOREC")
	return l.String()
}

func (SystemLoadArgs) acceptsSystem(t SystemType) bool { return t == SystemLoad }

// SystemSaveLogArgs: SaveLog,<DestPath>[,LogFormat]
type SystemSaveLogArgs struct {
	DestPath  string
	LogFormat string // Empty means HTML
}

func (a SystemSaveLogArgs) String() string {
	l := argList{a.DestPath}
	l.opt(a.LogFormat)
	return l.String()
}

func (SystemSaveLogArgs) acceptsSystem(t SystemType) bool { return t == SystemSaveLog }

// SystemCompatArgs keeps the arguments of types accepted only for
// compatibility, which are parsed and then ignored.
type SystemCompatArgs struct {
	Args []string
}

func (a SystemCompatArgs) String() string { return join(a.Args...) }
func (SystemCompatArgs) acceptsSystem(t SystemType) bool {
	switch t {
	case SystemLog, SystemFileRedirect, SystemRegRedirect, SystemRebuildVars:
		return true
	}
	return false
}

// ShellExecute serves ShellExecute, ShellExecuteEx and ShellExecuteDelete.
//
//	ShellExecute,<Action>,<FilePath>[,Params][,WorkDir][,%ExitOutVar%]
type ShellExecute struct {
	Action     string // Open, Hide, Min or a verb such as runas
	FilePath   string
	Params     string
	WorkDir    string
	ExitOutVar string // ShellExecute only
}

func (i ShellExecute) String() string {
	a := argList{i.Action, i.FilePath}
	// Trailing arguments are positional, so an unset one before a set one
	// is kept empty.
	rest := []string{i.Params, i.WorkDir, i.ExitOutVar}
	last := -1
	for j, s := range rest {
		if s != "" {
			last = j
		}
	}
	a.add(rest[:last+1]...)
	return a.String()
}

func (ShellExecute) accepts(k Kind) bool {
	return k == KindShellExecute || k == KindShellExecuteEx || k == KindShellExecuteDelete
}

// Macro is a call to a user-defined macro: <MacroName>[,Args...]
type Macro struct {
	MacroType string
	Args      []string
}

func (i Macro) String() string {
	a := argList{i.MacroType}
	a.add(i.Args...)
	return a.String()
}

func (Macro) accepts(k Kind) bool { return k == KindMacro }
