// Copyright (c) 2026 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package bir implements the SOAP 1.2 transport adapter for the Polish REGON
registry service (BIR 1.1, UslugaBIRzewnPubl).

# Protocol

Every call is a SOAP 1.2 envelope with two WS-Addressing headers in the
http://www.w3.org/2005/08/addressing namespace:

	<wsa:To>https://wyszukiwarkaregon.stat.gov.pl/wsBIR/UslugaBIRzewnPubl.svc</wsa:To>
	<wsa:Action>http://CIS/BIR/PUBL/2014/07/IUslugaBIRzewnPubl/Zaloguj</wsa:Action>

Login (Zaloguj) returns a session id. Every other call carries that id in the
"sid" HTTP header.

# Operations

The Service interface exposes the three operations the registry client needs:

	client, _ := bir.NewClient(&bir.ClientConfig{ServiceURL: serviceURL})

	login, err := client.Login(ctx, &bir.LoginRequest{ClientKey: key})
	found, err := client.Search(ctx, login.SessionID, &bir.SearchRequest{Key: bir.SearchByNip, Value: nip})
	report, err := client.FullReport(ctx, login.SessionID, &bir.ReportRequest{Regon: regon, ReportName: "BIR11OsPrawna"})

The Data fields hold the embedded XML document returned by the service,
unescaped but otherwise untouched.

# Faults

SOAP faults, HTTP failures and unreadable responses are all returned as
*Fault. Code is the fault subcode (or value) for SOAP faults, "HTTP" for
transport failures and "Client" for responses that could not be read.

# References

  - BIR 1.1 service: https://api.stat.gov.pl/Home/RegonApi
  - WS-Addressing 1.0 SOAP Binding: https://www.w3.org/TR/ws-addr-soap/
*/
package bir
