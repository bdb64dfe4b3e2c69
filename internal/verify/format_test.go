package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lcintel/internal/verify"
)

func TestValidSwiftFormat(t *testing.T) {
	assert.True(t, verify.ValidSwiftFormat("BNPAFRPP"))
	assert.True(t, verify.ValidSwiftFormat("DEUTDEFF500"))
	assert.True(t, verify.ValidSwiftFormat("CBLYLYTR"))

	assert.False(t, verify.ValidSwiftFormat("BNPAFRP"))      // 7 chars
	assert.False(t, verify.ValidSwiftFormat("BNPAFRPPX"))    // 9 chars
	assert.False(t, verify.ValidSwiftFormat("1234FRPP"))     // digits in bank code
	assert.False(t, verify.ValidSwiftFormat("bnpafrpp"))     // lowercase
	assert.False(t, verify.ValidSwiftFormat("BNPA12PP"))     // digits in country
}

func TestCleanSwiftCode(t *testing.T) {
	assert.Equal(t, "BNPAFRPP", verify.CleanSwiftCode("  bnpa-fr.pp  "))
	assert.Equal(t, "DEUTDEFF500", verify.CleanSwiftCode("DEUT DEFF/500"))
}

func TestSwiftCandidates(t *testing.T) {
	// 9 chars: drop the extra char or pad to a branch code.
	assert.Equal(t,
		[]string{"BNPAFRPPX", "BNPAFRPP", "BNPAFRPPXXX"},
		verify.SwiftCandidates("BNPAFRPPX"))

	// 10 chars: truncate, pad, or drop the ninth character.
	assert.Equal(t,
		[]string{"DEUTDEFF50", "DEUTDEFF", "DEUTDEFF50X", "DEUTDEFF0"},
		verify.SwiftCandidates("DEUTDEFF50"))

	// 11 chars ending XXX collapses to the 8 char head office code.
	assert.Equal(t,
		[]string{"DEUTDEFFXXX", "DEUTDEFF"},
		verify.SwiftCandidates("DEUTDEFFXXX"))

	// 11 chars with a real branch stays as is.
	assert.Equal(t, []string{"DEUTDEFF500"}, verify.SwiftCandidates("DEUTDEFF500"))

	// 12 chars: truncate to 11 and to 8.
	assert.Equal(t,
		[]string{"DEUTDEFF5000", "DEUTDEFF500", "DEUTDEFF"},
		verify.SwiftCandidates("DEUTDEFF5000"))

	// Separators are stripped before expansion.
	assert.Equal(t, []string{"BNPAFRPP"}, verify.SwiftCandidates("bnpa fr-pp"))
}

func TestParseHSCode(t *testing.T) {
	hs, ok := verify.ParseHSCode("8471.30")
	assert.True(t, ok)
	assert.Equal(t, "847130", hs.Code)
	assert.Equal(t, "84", hs.Chapter)
	assert.Equal(t, "8471", hs.Heading)
	assert.Equal(t, "847130", hs.Subheading)

	hs, ok = verify.ParseHSCode("1701")
	assert.True(t, ok)
	assert.Equal(t, "1701", hs.Heading)
	assert.Empty(t, hs.Subheading)

	_, ok = verify.ParseHSCode("0012.34")
	assert.False(t, ok, "chapter 00 is invalid")
	_, ok = verify.ParseHSCode("84")
	assert.False(t, ok, "too short")
	_, ok = verify.ParseHSCode("8471301234567")
	assert.False(t, ok, "too long")
	_, ok = verify.ParseHSCode("84AB")
	assert.False(t, ok, "non-digits")
	_, ok = verify.ParseHSCode("")
	assert.False(t, ok)
}

func TestValidContainerNumber(t *testing.T) {
	assert.True(t, verify.ValidContainerNumber("CSQU3054383"))
	assert.True(t, verify.ValidContainerNumber("csqu 305 4383"), "spacing and case are normalized")

	assert.False(t, verify.ValidContainerNumber("CSQU3054384"), "wrong check digit")
	assert.False(t, verify.ValidContainerNumber("CSQA3054383"), "invalid category letter")
	assert.False(t, verify.ValidContainerNumber("CSQU305438"), "too short")
	assert.False(t, verify.ValidContainerNumber("1SQU3054383"), "digit in owner code")
}
