// Copyright (c) 2026 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package regon is a client for the Polish national business registry (REGON),
served by the GUS BIR 1.1 SOAP service.

# Usage

	client, err := regon.NewClient(false, "")
	if err != nil {
		return err
	}

	record, err := client.FindByNip(ctx, "5261040828")
	switch {
	case errors.Is(err, regon.ErrEntityNotFound):
		// no such entity
	case err != nil:
		return err
	}

	report, err := client.GetReport(ctx, record.Get("Regon"), regon.ReportLegalPerson)

In the test environment the client key is ignored and TestClientKey is used.
Production requires the key issued by GUS.

# Sessions

Every public operation logs in, performs one call and discards the session.
Nothing is cached, so a Client may be shared between goroutines.

# Results

Results are returned as a Record: the direct children of the data element in
document order. Nested elements keep only their own children. Classification
code reports (BIR11OsPrawnaPkd, BIR11OsFizycznaPkd) hold one dane field per
code; use Record.Rows("dane") to read them.

# Errors

Errors match one of ErrInvalidArgument, ErrEntityNotFound or
ErrServiceCallFailed with errors.Is. Invalid arguments are detected before
any network call. Messages sent by the service are returned verbatim.
*/
package regon
