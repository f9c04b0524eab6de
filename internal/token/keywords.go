package token

var keywords = map[string]Kind{
	"package":    KwPackage,
	"import":     KwImport,
	"interface":  KwInterface,
	"parcelable": KwParcelable,
	"enum":       KwEnum,
	"oneway":     KwOneway,
	"const":      KwConst,
	"in":         KwIn,
	"out":        KwOut,
	"inout":      KwInOut,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
