// Copyright (c) 2026 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package goregon is a client for the Polish national business registry (REGON)
published by Statistics Poland (GUS) through the BIR 1.1 SOAP service.

# Overview

go-regon looks up business entities by REGON or NIP and fetches the full
registry reports the service offers. It speaks SOAP 1.2 with WS-Addressing
directly, handles the MTOM/XOP framing the service uses for its responses and
maps registry error codes to Go errors.

# Package Structure

	github.com/sirosfoundation/go-regon/pkg/regon     - Registry client API
	github.com/sirosfoundation/go-regon/pkg/bir       - BIR 1.1 SOAP operations
	github.com/sirosfoundation/go-regon/pkg/transport - HTTPS transport with TLS 1.2/1.3
	github.com/sirosfoundation/go-regon/pkg/mime      - MTOM/XOP response handling
	github.com/sirosfoundation/go-regon/cmd/regon     - Command line client

# Quick Start

	import "github.com/sirosfoundation/go-regon/pkg/regon"

	// The test installation accepts a well-known key
	client, err := regon.NewClient(false, "")
	if err != nil {
	    return err
	}

	entity, err := client.FindEntityByNip(ctx, "5261040828")
	if errors.Is(err, regon.ErrEntityNotFound) {
	    // no such entity
	}

	report, err := client.GetReport(ctx, entity.Regon, entity.FullReportType())

# Report Types

	BIR11TypPodmiotu                      - Entity type
	BIR11OsPrawna                         - Legal person
	BIR11OsPrawnaPkd                      - Legal person PKD codes
	BIR11OsFizycznaDaneOgolne             - Natural person, general data
	BIR11OsFizycznaDzialalnoscCeidg       - Natural person, CEIDG activity
	BIR11OsFizycznaPkd                    - Natural person PKD codes
	BIR11OsFizycznaDzialalnoscRolnicza    - Natural person, agricultural activity
	BIR11OsFizycznaDzialalnoscPozostala   - Natural person, other activity
	BIR11OsFizycznaDzialalnoscSkreslona   - Natural person, deregistered activity

# References

  - REGON API: https://api.stat.gov.pl/Home/RegonApi
  - SOAP 1.2: https://www.w3.org/TR/soap12-part1/
  - XOP: https://www.w3.org/TR/xop10/

# License

BSD-2-Clause License
*/
package goregon
