package regon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegon(t *testing.T) {
	tests := []struct {
		name  string
		regon string
		valid bool
	}{
		{"nine digits", "000331501", true},
		{"fourteen digits", "12345678901234", true},
		{"too short", "123", false},
		{"ten digits", "1234567890", false},
		{"thirteen digits", "1234567890123", false},
		{"fifteen digits", "123456789012345", false},
		{"letters", "00033150A", false},
		{"leading space", " 000331501", false},
		{"trailing newline", "000331501\n", false},
		{"empty", "", false},
		{"dashes", "000-331-501", false},
		{"non ascii digits", "٠٠٠٣٣١٥٠١", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegon(tt.regon)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestValidateNip(t *testing.T) {
	tests := []struct {
		name  string
		nip   string
		valid bool
	}{
		{"ten digits", "5261040828", true},
		{"nine digits", "526104082", false},
		{"eleven digits", "52610408281", false},
		{"with dashes", "526-104-08-28", false},
		{"with prefix", "PL5261040828", false},
		{"trailing space", "5261040828 ", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNip(tt.nip)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestValidateReportType(t *testing.T) {
	for _, r := range ReportTypes() {
		assert.NoError(t, ValidateReportType(string(r)), r)
	}

	for _, name := range []string{"", "bir11osprawna", "BIR11OSPRAWNA", "BIR11OsPrawna ", "BIR11OsPrawnaPKD", "BIR12OsPrawna"} {
		err := ValidateReportType(name)
		assert.ErrorIs(t, err, ErrInvalidArgument, name)
	}
}

func TestValidate_Message(t *testing.T) {
	err := ValidateRegon("123")
	assert.EqualError(t, err, "123 is not valid REGON")

	err = ValidateNip("abc")
	assert.EqualError(t, err, "abc is not valid NIP")

	err = ValidateReportType("Foo")
	assert.EqualError(t, err, "Foo is not valid report type")

	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "report type", argErr.Kind)
	assert.Equal(t, "Foo", argErr.Value)
}

func TestReportTypes(t *testing.T) {
	types := ReportTypes()
	assert.Len(t, types, 9)

	types[0] = "changed"
	assert.Equal(t, ReportEntityType, ReportTypes()[0])

	var pkd []ReportType
	for _, r := range ReportTypes() {
		if r.IsPKD() {
			pkd = append(pkd, r)
		}
	}
	assert.Equal(t, []ReportType{ReportLegalPersonPKD, ReportNaturalPersonPKD}, pkd)
}

func TestParseEnvironment(t *testing.T) {
	env, err := ParseEnvironment("production")
	require.NoError(t, err)
	assert.Equal(t, Production, env)
	assert.Equal(t, "production", env.String())

	env, err = ParseEnvironment("test")
	require.NoError(t, err)
	assert.Equal(t, Test, env)

	_, err = ParseEnvironment("staging")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, "Environment(7)", Environment(7).String())
	assert.Equal(t, DefaultEndpoints(Production), DefaultEndpoints(Test))
	assert.Contains(t, DefaultEndpoints(Production).Service, "wyszukiwarkaregon.stat.gov.pl/wsBIR/")
}
