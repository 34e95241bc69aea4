// Copyright (c) 2026 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package transport implements the HTTPS transport for BIR SOAP calls.

The client posts one SOAP 1.2 envelope per call and returns the raw body.
TLS 1.2 is the minimum accepted version:

	client := transport.NewHTTPSClient(transport.DefaultHTTPSConfig())

	resp, err := client.Send(ctx, &transport.Request{
	    Endpoint:    "https://wyszukiwarkaregon.stat.gov.pl/wsBIR/UslugaBIRzewnPubl.svc",
	    ContentType: `application/soap+xml; charset=utf-8`,
	    Body:        envelope,
	    Header:      http.Header{"Sid": {sessionID}},
	})

# Status Handling

A non-200 answer is returned as *StatusError with the body intact. SOAP 1.2
services report faults with HTTP 500, so callers inspect the body for a Fault
before treating the error as a plain transport failure.

# References

  - SOAP 1.2 HTTP binding: https://www.w3.org/TR/soap12-part2/#soapinhttp
  - TLS 1.3 RFC 8446: https://datatracker.ietf.org/doc/html/rfc8446
*/
package transport
