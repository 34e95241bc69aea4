package mime

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const testEnvelope = `<s:Envelope xmlns:s="http://www.w3.org/2003/05/soap-envelope" xmlns:a="http://www.w3.org/2005/08/addressing">` +
	`<s:Header><a:Action s:mustUnderstand="1">http://CIS/BIR/PUBL/2014/07/IUslugaBIRzewnPubl/ZalogujResponse</a:Action></s:Header>` +
	`<s:Body><ZalogujResponse xmlns="http://CIS/BIR/PUBL/2014/07"><ZalogujResult>zxcvbnmasd12345</ZalogujResult></ZalogujResponse></s:Body>` +
	`</s:Envelope>`

const testBoundary = "uuid:6b62cda6-95c5-4b28-a5b5-8ae5a1b3ad32+id=1"

func xopBody(envelope string) string {
	return "\r\n--" + testBoundary + "\r\n" +
		"Content-ID: <http://tempuri.org/0>\r\n" +
		"Content-Transfer-Encoding: 8bit\r\n" +
		"Content-Type: application/xop+xml;charset=utf-8;type=\"application/soap+xml\"\r\n" +
		"\r\n" +
		envelope + "\r\n" +
		"--" + testBoundary + "--\r\n"
}

const xopContentType = `multipart/related; type="application/xop+xml"; start="<http://tempuri.org/0>"; boundary="` + testBoundary + `"; start-info="application/soap+xml"`

func TestRepairXOP_ExtractsEnvelope(t *testing.T) {
	raw := []byte(xopBody(testEnvelope))

	repaired := RepairXOP(raw)

	assert.Equal(t, testEnvelope, string(repaired))
}

func TestRepairXOP_DropsTrailingParts(t *testing.T) {
	raw := "--b1\r\nContent-Type: application/xop+xml; charset=utf-8\r\n\r\n" +
		testEnvelope +
		"\r\n--b1\r\nContent-Type: application/octet-stream\r\nContent-ID: <att>\r\n\r\n" +
		"<s:Envelope>not this one</s:Envelope>\r\n--b1--\r\n"

	repaired := RepairXOP([]byte(raw))

	assert.Equal(t, testEnvelope, string(repaired))
}

func TestRepairXOP_NoMarkerReturnsInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "bare envelope", raw: testEnvelope},
		{name: "multipart without xop part", raw: "--b\r\nContent-Type: text/xml\r\n\r\n" + testEnvelope + "\r\n--b--"},
		{name: "empty", raw: ""},
		{name: "marker in lowercase", raw: "content-type: application/xop+xml\r\n\r\n" + testEnvelope + "\r\nTRAILER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := []byte(tt.raw)
			assert.Equal(t, tt.raw, string(RepairXOP(raw)))
		})
	}
}

func TestRepairXOP_MarkerWithoutEnvelope(t *testing.T) {
	raw := "--b\r\nContent-Type: application/xop+xml\r\n\r\n<root/>\r\n--b--"

	assert.Equal(t, raw, string(RepairXOP([]byte(raw))))
}

func TestRepairXOP_UnclosedEnvelope(t *testing.T) {
	raw := "--b\r\nContent-Type: application/xop+xml\r\n\r\n<s:Envelope><s:Body>\r\n--b--"

	assert.Equal(t, raw, string(RepairXOP([]byte(raw))))
}

func TestRepairXOP_OtherPrefixAndDefaultNamespace(t *testing.T) {
	soapEnv := `<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope"><soap:Body/></soap:Envelope>`
	assert.Equal(t, soapEnv, string(RepairXOP([]byte(xopBody(soapEnv)))))

	plain := `<Envelope xmlns="http://www.w3.org/2003/05/soap-envelope"><Body/></Envelope>`
	assert.Equal(t, plain, string(RepairXOP([]byte(xopBody(plain)))))
}

func TestIsMultipart(t *testing.T) {
	assert.True(t, IsMultipart(xopContentType))
	assert.False(t, IsMultipart("application/soap+xml; charset=utf-8"))
	assert.False(t, IsMultipart(""))
	assert.False(t, IsMultipart(";;;"))
}

func TestParseRelated_RootByStart(t *testing.T) {
	part, err := ParseRelated(strings.NewReader(xopBody(testEnvelope)), xopContentType)
	require.NoError(t, err)

	assert.Equal(t, "<http://tempuri.org/0>", part.ContentID)
	assert.Equal(t, ContentTypeSOAPXML, part.Type)
	assert.Equal(t, testEnvelope, strings.TrimSpace(string(part.Data)))
}

func TestParseRelated_FirstPartWithoutStart(t *testing.T) {
	boundary := strings.ReplaceAll(uuid.NewString(), "-", "")
	body := "--" + boundary + "\r\n" +
		"Content-Type: application/xop+xml; charset=utf-8; type=\"application/soap+xml\"\r\n\r\n" +
		testEnvelope + "\r\n" +
		"--" + boundary + "\r\n" +
		"Content-Type: application/octet-stream\r\n\r\n" +
		"binary\r\n" +
		"--" + boundary + "--\r\n"

	part, err := ParseRelated(strings.NewReader(body), `multipart/related; type="application/xop+xml"; boundary="`+boundary+`"`)
	require.NoError(t, err)
	assert.Equal(t, testEnvelope, string(part.Data))
}

func TestParseRelated_DecodesCharset(t *testing.T) {
	encoded, err := charmap.Windows1250.NewEncoder().String("<Nazwa>Łódź</Nazwa>")
	require.NoError(t, err)

	body := "--b\r\nContent-Type: application/xop+xml; charset=windows-1250\r\n\r\n" + encoded + "\r\n--b--\r\n"

	part, err := ParseRelated(strings.NewReader(body), `multipart/related; boundary="b"`)
	require.NoError(t, err)
	assert.Equal(t, "<Nazwa>Łódź</Nazwa>", string(part.Data))
}

func TestParseRelated_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     string
	}{
		{name: "invalid content type", contentType: ";;;", wantErr: "failed to parse content type"},
		{name: "not multipart", contentType: "text/xml", wantErr: "not a multipart message"},
		{name: "missing boundary", contentType: "multipart/related", wantErr: "boundary not found"},
		{
			name:        "start not present",
			body:        "--b\r\nContent-ID: <other>\r\n\r\n<x/>\r\n--b--\r\n",
			contentType: `multipart/related; boundary="b"; start="<root>"`,
			wantErr:     "root part not found",
		},
		{
			name:        "unknown charset",
			body:        "--b\r\nContent-Type: text/xml; charset=x-no-such-charset\r\n\r\n<x/>\r\n--b--\r\n",
			contentType: `multipart/related; boundary="b"`,
			wantErr:     "unsupported charset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRelated(strings.NewReader(tt.body), tt.contentType)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUnwrap(t *testing.T) {
	body := []byte(xopBody(testEnvelope))

	assert.Equal(t, testEnvelope, strings.TrimSpace(string(Unwrap(body, xopContentType))))
	assert.Equal(t, testEnvelope, string(Unwrap(body, "application/xop+xml")))
	assert.Equal(t, testEnvelope, string(Unwrap([]byte(testEnvelope), "application/soap+xml; charset=utf-8")))

	// broken multipart framing falls back to marker-based repair
	broken := bytes.ReplaceAll(body, []byte(testBoundary), []byte("other"))
	assert.Equal(t, testEnvelope, string(Unwrap(broken, xopContentType)))
}

func TestNormalizeContentID(t *testing.T) {
	assert.Equal(t, "root@x", normalizeContentID("<root@x>"))
	assert.Equal(t, "root@x", normalizeContentID("cid:root@x"))
	assert.Equal(t, "root@x", normalizeContentID("root@x"))
}
