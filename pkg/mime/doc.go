// Copyright (c) 2026 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package mime unwraps MTOM/XOP packaged SOAP responses.

The BIR service answers some calls with a multipart/related document whose
root part is application/xop+xml instead of a bare SOAP envelope:

	--uuid:6b62cda6-...+id=1
	Content-ID: <http://tempuri.org/0>
	Content-Transfer-Encoding: 8bit
	Content-Type: application/xop+xml;charset=utf-8;type="application/soap+xml"

	<s:Envelope xmlns:s="http://www.w3.org/2003/05/soap-envelope">...</s:Envelope>
	--uuid:6b62cda6-...+id=1--

# Repair

RepairXOP works on the raw body alone. If the body contains the part header
"Content-Type: application/xop+xml" it cuts out the envelope, from its start
tag through the matching end tag. Otherwise the body is returned untouched.

# Structured Parsing

When the HTTP Content-Type header is available, ParseRelated reads the
multipart document properly, picks the root part by its start parameter and
converts a non-UTF-8 charset to UTF-8. Unwrap combines both:

	envelope := mime.Unwrap(resp.Body, resp.ContentType)

# References

  - XOP: https://www.w3.org/TR/xop10/
  - MTOM: https://www.w3.org/TR/soap12-mtom/
  - MIME Multipart/Related: https://datatracker.ietf.org/doc/html/rfc2387
*/
package mime
