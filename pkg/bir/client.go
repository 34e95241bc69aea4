package bir

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/sirosfoundation/go-regon/pkg/mime"
	"github.com/sirosfoundation/go-regon/pkg/transport"
)

// Sender posts a request to the service endpoint
type Sender interface {
	Send(ctx context.Context, req *transport.Request) (*transport.Response, error)
}

// ClientConfig holds client configuration
type ClientConfig struct {
	// ServiceURL is both the POST target and the WS-Addressing To value
	ServiceURL  string
	HTTPSConfig *transport.HTTPSConfig
	// Sender overrides the HTTPS client built from HTTPSConfig
	Sender Sender
	Logger *slog.Logger
}

// Client performs BIR SOAP calls. It implements Service.
type Client struct {
	serviceURL string
	sender     Sender
	logger     *slog.Logger

	mu   sync.Mutex
	last exchange
}

// exchange is one traced request and the response it received
type exchange struct {
	request  []byte
	response []byte
}

var _ Service = (*Client)(nil)

// NewClient creates a new BIR SOAP client
func NewClient(config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if config.ServiceURL == "" {
		return nil, fmt.Errorf("service URL is required")
	}

	sender := config.Sender
	if sender == nil {
		sender = transport.NewHTTPSClient(config.HTTPSConfig)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		serviceURL: config.ServiceURL,
		sender:     sender,
		logger:     logger,
	}, nil
}

// Call sends one SOAP action and returns the response envelope.
//
// The envelope carries WS-Addressing To and Action headers. A non-empty
// sessionID is sent as the "sid" HTTP header. MTOM/XOP packaged responses are
// unwrapped before they are returned. Failures are returned as *Fault.
func (c *Client) Call(ctx context.Context, action Action, payload *etree.Element, sessionID string) ([]byte, error) {
	requestID := uuid.NewString()
	log := c.logger.With(
		slog.String("request_id", requestID),
		slog.String("action", action.Operation()),
	)

	doc := buildEnvelope(action, c.serviceURL, payload)
	envelope, err := doc.WriteToBytes()
	if err != nil {
		return nil, &Fault{Code: FaultCodeClient, Reason: "failed to serialize envelope", Err: err}
	}

	header := http.Header{}
	if sessionID != "" {
		header[SessionHeader] = []string{sessionID}
	}

	log.Debug("sending SOAP request", slog.Int("size", len(envelope)))

	resp, err := c.sender.Send(ctx, &transport.Request{
		Endpoint:    c.serviceURL,
		ContentType: fmt.Sprintf(`%s; charset=utf-8; action="%s"`, mime.ContentTypeSOAPXML, action),
		Body:        envelope,
		Header:      header,
	})
	if err != nil {
		fault, raw := c.transportFault(err)
		c.trace(envelope, raw)
		log.Warn("SOAP request failed",
			slog.String("code", fault.Code),
			slog.String("error", fault.Reason))
		return nil, fault
	}

	raw := mime.Unwrap(resp.Body, resp.ContentType)
	c.trace(envelope, raw)
	log.Debug("received SOAP response",
		slog.String("content_type", resp.ContentType),
		slog.Int("size", len(raw)))

	return raw, nil
}

// transportFault maps a Send error to a *Fault and returns the unwrapped
// error body, if any. A non-200 status whose body holds a SOAP Fault yields
// that fault.
func (c *Client) transportFault(err error) (*Fault, []byte) {
	se, ok := transport.GetStatusError(err)
	if !ok {
		return &Fault{Code: FaultCodeHTTP, Reason: err.Error(), Err: err}, nil
	}

	raw := mime.Unwrap(se.Body, se.ContentType)
	if f := findFault(raw); f != nil {
		f.Err = err
		return f, raw
	}
	return &Fault{Code: FaultCodeHTTP, Reason: http.StatusText(se.StatusCode), Err: err}, raw
}

// trace records a finished exchange. Request and response are stored
// together so concurrent calls never mix them.
func (c *Client) trace(request, response []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = exchange{request: request, response: response}
}

// LastExchange returns the request envelope and the response (after XOP
// repair) of the most recently finished call
func (c *Client) LastExchange() (request, response []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last.request, c.last.response
}

// LastRequest returns the request envelope of the most recently finished call
func (c *Client) LastRequest() []byte {
	req, _ := c.LastExchange()
	return req
}

// LastResponse returns the response of the most recently finished call.
// It is nil when the call failed before any response arrived.
func (c *Client) LastResponse() []byte {
	_, resp := c.LastExchange()
	return resp
}

// invoke calls an action and extracts its result text
func (c *Client) invoke(ctx context.Context, action Action, payload *etree.Element, sessionID string) (string, error) {
	raw, err := c.Call(ctx, action, payload, sessionID)
	if err != nil {
		return "", err
	}

	body, err := parseEnvelope(raw)
	if err != nil {
		return "", err
	}

	return resultText(body, action)
}

// Login opens a session with the client key
func (c *Client) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	sid, err := c.invoke(ctx, ActionLogin, loginPayload(req), "")
	if err != nil {
		return nil, err
	}
	return &LoginResponse{SessionID: sid}, nil
}

// Search looks up entities by a single identifier
func (c *Client) Search(ctx context.Context, sessionID string, req *SearchRequest) (*SearchResponse, error) {
	data, err := c.invoke(ctx, ActionSearch, searchPayload(req), sessionID)
	if err != nil {
		return nil, err
	}
	return &SearchResponse{Data: data}, nil
}

// FullReport fetches a full report for a REGON
func (c *Client) FullReport(ctx context.Context, sessionID string, req *ReportRequest) (*ReportResponse, error) {
	data, err := c.invoke(ctx, ActionFullReport, reportPayload(req), sessionID)
	if err != nil {
		return nil, err
	}
	return &ReportResponse{Data: data}, nil
}
