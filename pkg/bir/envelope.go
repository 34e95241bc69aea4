package bir

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// buildEnvelope creates a SOAP 1.2 envelope with WS-Addressing To and Action
// headers around the given body payload.
func buildEnvelope(action Action, to string, payload *etree.Element) *etree.Document {
	doc := etree.NewDocument()

	env := doc.CreateElement("soap:Envelope")
	env.CreateAttr("xmlns:soap", NsSOAP12)
	env.CreateAttr("xmlns:ns", NsBIR)
	env.CreateAttr("xmlns:dat", NsDataContract)

	header := env.CreateElement("soap:Header")
	header.CreateAttr("xmlns:wsa", NsAddressing)
	header.CreateElement("wsa:To").SetText(to)
	header.CreateElement("wsa:Action").SetText(string(action))

	body := env.CreateElement("soap:Body")
	if payload != nil {
		body.AddChild(payload)
	}

	return doc
}

// loginPayload builds the Zaloguj body element
func loginPayload(req *LoginRequest) *etree.Element {
	op := etree.NewElement("ns:" + ActionLogin.Operation())
	op.CreateElement("ns:pKluczUzytkownika").SetText(req.ClientKey)
	return op
}

// searchPayload builds the DaneSzukajPodmioty body element
func searchPayload(req *SearchRequest) *etree.Element {
	op := etree.NewElement("ns:" + ActionSearch.Operation())
	params := op.CreateElement("ns:pParametryWyszukiwania")
	params.CreateElement("dat:" + string(req.Key)).SetText(req.Value)
	return op
}

// reportPayload builds the DanePobierzPelnyRaport body element
func reportPayload(req *ReportRequest) *etree.Element {
	op := etree.NewElement("ns:" + ActionFullReport.Operation())
	op.CreateElement("ns:pRegon").SetText(req.Regon)
	op.CreateElement("ns:pNazwaRaportu").SetText(req.ReportName)
	return op
}

// parseEnvelope reads a SOAP envelope and returns its Body element.
// A Fault inside the body is returned as *Fault.
func parseEnvelope(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &Fault{
			Code:   FaultCodeClient,
			Reason: "looks like we got no XML document",
			Err:    err,
		}
	}

	env := doc.Root()
	if env == nil {
		return nil, &Fault{Code: FaultCodeClient, Reason: "looks like we got no XML document"}
	}
	if env.Tag != "Envelope" {
		return nil, &Fault{Code: FaultCodeClient, Reason: "response is not a SOAP envelope"}
	}

	body := childElement(env, "Body")
	if body == nil {
		return nil, &Fault{Code: FaultCodeClient, Reason: "SOAP envelope has no Body"}
	}

	if fault := childElement(body, "Fault"); fault != nil {
		return nil, parseFault(fault)
	}

	return body, nil
}

// findFault returns the Fault carried by an envelope, or nil when the data
// is not an envelope or its body holds no Fault.
func findFault(data []byte) *Fault {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil
	}
	env := doc.Root()
	if env == nil || env.Tag != "Envelope" {
		return nil
	}
	body := childElement(env, "Body")
	if body == nil {
		return nil
	}
	if fault := childElement(body, "Fault"); fault != nil {
		return parseFault(fault)
	}
	return nil
}

// parseFault converts a SOAP 1.2 or SOAP 1.1 Fault element
func parseFault(el *etree.Element) *Fault {
	f := &Fault{}

	// SOAP 1.2: Code/Value, Reason/Text, Detail
	if code := childElement(el, "Code"); code != nil {
		if v := childElement(code, "Value"); v != nil {
			f.Code = localName(strings.TrimSpace(v.Text()))
		}
		if sub := childElement(code, "Subcode"); sub != nil {
			if v := childElement(sub, "Value"); v != nil && strings.TrimSpace(v.Text()) != "" {
				f.Code = localName(strings.TrimSpace(v.Text()))
			}
		}
	}
	if reason := childElement(el, "Reason"); reason != nil {
		if text := childElement(reason, "Text"); text != nil {
			f.Reason = strings.TrimSpace(text.Text())
		}
	}
	if detail := childElement(el, "Detail"); detail != nil {
		f.Detail = innerText(detail)
	}

	// SOAP 1.1: faultcode, faultstring, detail
	if f.Code == "" {
		if v := childElement(el, "faultcode"); v != nil {
			f.Code = localName(strings.TrimSpace(v.Text()))
		}
	}
	if f.Reason == "" {
		if v := childElement(el, "faultstring"); v != nil {
			f.Reason = strings.TrimSpace(v.Text())
		}
	}
	if f.Detail == "" {
		if v := childElement(el, "detail"); v != nil {
			f.Detail = innerText(v)
		}
	}

	if f.Reason == "" {
		f.Reason = "unknown SOAP fault"
	}
	return f
}

// resultText returns the text of the <Operation>Result element in a body
func resultText(body *etree.Element, action Action) (string, error) {
	op := action.Operation()
	resp := childElement(body, op+"Response")
	if resp == nil {
		return "", &Fault{Code: FaultCodeClient, Reason: fmt.Sprintf("missing %sResponse element", op)}
	}
	result := childElement(resp, op+"Result")
	if result == nil {
		return "", &Fault{Code: FaultCodeClient, Reason: fmt.Sprintf("missing %sResult element", op)}
	}
	return innerText(result), nil
}

// childElement returns the first direct child with the given local name
func childElement(el *etree.Element, local string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == local {
			return c
		}
	}
	return nil
}

// innerText concatenates all character data below an element
func innerText(el *etree.Element) string {
	var sb strings.Builder
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, t := range e.Child {
			switch n := t.(type) {
			case *etree.CharData:
				sb.WriteString(n.Data)
			case *etree.Element:
				walk(n)
			}
		}
	}
	walk(el)
	return strings.TrimSpace(sb.String())
}

// localName strips a namespace prefix from a QName value
func localName(qname string) string {
	if i := strings.LastIndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}
