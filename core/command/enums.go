package command

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// HKey is a registry root key.
type HKey int

const (
	HKeyNone HKey = iota
	HKeyClassesRoot
	HKeyCurrentUser
	HKeyLocalMachine
	HKeyUsers
	HKeyCurrentConfig
)

var hkeyNames = [...]struct{ short, long string }{
	HKeyNone:          {"", ""},
	HKeyClassesRoot:   {"HKCR", "HKEY_CLASSES_ROOT"},
	HKeyCurrentUser:   {"HKCU", "HKEY_CURRENT_USER"},
	HKeyLocalMachine:  {"HKLM", "HKEY_LOCAL_MACHINE"},
	HKeyUsers:         {"HKU", "HKEY_USERS"},
	HKeyCurrentConfig: {"HKCC", "HKEY_CURRENT_CONFIG"},
}

// String returns the short form used in scripts, e.g. HKLM.
func (h HKey) String() string {
	if h < 0 || int(h) >= len(hkeyNames) {
		return fmt.Sprintf("HKey(%d)", int(h))
	}
	return hkeyNames[h].short
}

// ParseHKey accepts the short or long root key name in any case.
func ParseHKey(s string) (HKey, bool) {
	for h := HKeyClassesRoot; int(h) < len(hkeyNames); h++ {
		if strings.EqualFold(s, hkeyNames[h].short) || strings.EqualFold(s, hkeyNames[h].long) {
			return h, true
		}
	}
	return HKeyNone, false
}

// RegValueType is a registry value type, numbered as Windows numbers them.
type RegValueType uint32

const (
	RegNone         RegValueType = 0
	RegString       RegValueType = 1
	RegExpandString RegValueType = 2
	RegBinary       RegValueType = 3
	RegDWord        RegValueType = 4
	RegMultiString  RegValueType = 7
	RegQWord        RegValueType = 11
)

func (t RegValueType) String() string {
	switch t {
	case RegNone:
		return "REG_NONE"
	case RegString:
		return "REG_SZ"
	case RegExpandString:
		return "REG_EXPAND_SZ"
	case RegBinary:
		return "REG_BINARY"
	case RegDWord:
		return "REG_DWORD"
	case RegMultiString:
		return "REG_MULTI_SZ"
	case RegQWord:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("0x%X", uint32(t))
	}
}

// RegMultiType is the edit RegMulti applies to a REG_MULTI_SZ value.
type RegMultiType int

const (
	RegMultiAppend RegMultiType = iota
	RegMultiPrepend
	RegMultiBefore
	RegMultiBehind
	RegMultiPlace
	RegMultiDelete
	RegMultiIndex
)

var regMultiNames = [...]string{"Append", "Prepend", "Before", "Behind", "Place", "Delete", "Index"}

func (t RegMultiType) String() string {
	if t < 0 || int(t) >= len(regMultiNames) {
		return fmt.Sprintf("RegMultiType(%d)", int(t))
	}
	return regMultiNames[t]
}

// TXTAddLineMode is where TXTAddLine puts the line. The mode is kept as text
// because scripts may pass it through a variable.
type TXTAddLineMode string

const (
	TXTAppend  TXTAddLineMode = "Append"
	TXTPrepend TXTAddLineMode = "Prepend"
)

// ArchiveFormat is the container written by Compress.
type ArchiveFormat int

const (
	ArchiveZip ArchiveFormat = 1
)

func (f ArchiveFormat) String() string {
	if f == ArchiveZip {
		return "Zip"
	}
	return fmt.Sprintf("ArchiveFormat(%d)", int(f))
}

// CompressLevel is the optional level of Compress.
type CompressLevel int

const (
	CompressDefault CompressLevel = iota
	CompressStore
	CompressFastest
	CompressNormal
	CompressBest
)

var compressLevelNames = [...]string{"", "STORE", "FASTEST", "NORMAL", "BEST"}

func (l CompressLevel) String() string {
	if l < 0 || int(l) >= len(compressLevelNames) {
		return fmt.Sprintf("CompressLevel(%d)", int(l))
	}
	return compressLevelNames[l]
}

// TextEncoding is the optional encoding flag of file commands.
type TextEncoding int

const (
	EncodingDefault TextEncoding = iota
	EncodingUTF8
	EncodingUTF16
	EncodingUTF16BE
	EncodingANSI
)

var encodingFlags = [...]string{"", "UTF8", "UTF16", "UTF16BE", "ANSI"}

// String returns the script flag, empty for EncodingDefault.
func (e TextEncoding) String() string {
	if e < 0 || int(e) >= len(encodingFlags) {
		return fmt.Sprintf("TextEncoding(%d)", int(e))
	}
	return encodingFlags[e]
}

// ParseTextEncoding accepts a script encoding flag in any case.
func ParseTextEncoding(s string) (TextEncoding, bool) {
	for e := EncodingUTF8; int(e) < len(encodingFlags); e++ {
		if strings.EqualFold(s, encodingFlags[e]) {
			return e, true
		}
	}
	return EncodingDefault, false
}

// Encoding returns the codec for e. UTF16 variants write a byte order mark,
// ANSI is Windows-1252 and EncodingDefault is UTF-8.
func (e TextEncoding) Encoding() encoding.Encoding {
	switch e {
	case EncodingUTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case EncodingANSI:
		return charmap.Windows1252
	default:
		return unicode.UTF8
	}
}

// InterfaceElement is the property ReadInterface and WriteInterface touch.
type InterfaceElement int

const (
	ElementText InterfaceElement = iota
	ElementVisible
	ElementPosX
	ElementPosY
	ElementWidth
	ElementHeight
	ElementValue
)

var elementNames = [...]string{"Text", "Visible", "PosX", "PosY", "Width", "Height", "Value"}

func (e InterfaceElement) String() string {
	if e < 0 || int(e) >= len(elementNames) {
		return fmt.Sprintf("InterfaceElement(%d)", int(e))
	}
	return elementNames[e]
}

// MessageAction is the icon of a Message box.
type MessageAction int

const (
	MessageNone MessageAction = iota
	MessageInformation
	MessageConfirmation
	MessageError
	MessageWarning
)

var messageActionNames = [...]string{"None", "Information", "Confirmation", "Error", "Warning"}

func (a MessageAction) String() string {
	if a < 0 || int(a) >= len(messageActionNames) {
		return fmt.Sprintf("MessageAction(%d)", int(a))
	}
	return messageActionNames[a]
}

// BeepType is the system sound played by Beep.
type BeepType int

const (
	BeepOK BeepType = iota
	BeepError
	BeepAsterisk
	BeepConfirmation
)

var beepNames = [...]string{"OK", "Error", "Asterisk", "Confirmation"}

func (t BeepType) String() string {
	if t < 0 || int(t) >= len(beepNames) {
		return fmt.Sprintf("BeepType(%d)", int(t))
	}
	return beepNames[t]
}

// HashType names a digest algorithm. It is text because scripts may pass it
// through a variable.
type HashType string

const (
	HashMD5    HashType = "MD5"
	HashSHA1   HashType = "SHA1"
	HashSHA256 HashType = "SHA256"
	HashSHA384 HashType = "SHA384"
	HashSHA512 HashType = "SHA512"
)

// CheckMode is the tri-state integrity check flag of WimOptimize and
// WimExport.
type CheckMode int

const (
	CheckKeep CheckMode = iota
	CheckOn
	CheckOff
)

func (m CheckMode) flag() string {
	switch m {
	case CheckOn:
		return "CHECK"
	case CheckOff:
		return "NOCHECK"
	default:
		return ""
	}
}
