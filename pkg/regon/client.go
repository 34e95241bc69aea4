package regon

import (
	"context"
	"log/slog"
	"strings"

	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-regon/pkg/bir"
	"github.com/sirosfoundation/go-regon/pkg/transport"
)

// IdentifierKind names the identifier a search is made by
type IdentifierKind string

// Identifier kinds
const (
	Regon IdentifierKind = IdentifierKind(bir.SearchByRegon)
	Nip   IdentifierKind = IdentifierKind(bir.SearchByNip)
)

const (
	dataElement      = "dane"
	errorCodeElement = "ErrorCode"
	errorMsgElement  = "ErrorMessagePl"
)

// Client queries the REGON registry. Each call opens its own session, so a
// Client is safe for concurrent use.
type Client struct {
	env       Environment
	endpoints Endpoints
	clientKey string
	service   bir.Service
	logger    *slog.Logger
}

// Option configures a Client
type Option func(*options)

type options struct {
	logger      *slog.Logger
	service     bir.Service
	sender      bir.Sender
	httpsConfig *transport.HTTPSConfig
	endpoints   *Endpoints
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithService replaces the BIR SOAP client
func WithService(service bir.Service) Option {
	return func(o *options) {
		o.service = service
	}
}

// WithSender replaces the HTTPS sender used by the default BIR SOAP client
func WithSender(sender bir.Sender) Option {
	return func(o *options) {
		o.sender = sender
	}
}

// WithHTTPSConfig sets the HTTPS transport configuration
func WithHTTPSConfig(config *transport.HTTPSConfig) Option {
	return func(o *options) {
		o.httpsConfig = config
	}
}

// WithEndpoints overrides the published endpoints of the environment
func WithEndpoints(endpoints Endpoints) Option {
	return func(o *options) {
		o.endpoints = &endpoints
	}
}

// NewClient creates a registry client.
//
// Outside production the key is ignored and TestClientKey is used. In
// production a non-empty key is required.
func NewClient(production bool, clientKey string, opts ...Option) (*Client, error) {
	env := Test
	if production {
		env = Production
	}

	key, err := clientKeyFor(production, clientKey)
	if err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	endpoints := DefaultEndpoints(env)
	if o.endpoints != nil {
		endpoints = *o.endpoints
	}

	service := o.service
	if service == nil {
		service, err = bir.NewClient(&bir.ClientConfig{
			ServiceURL:  endpoints.Service,
			HTTPSConfig: o.httpsConfig,
			Sender:      o.sender,
			Logger:      logger,
		})
		if err != nil {
			return nil, &InvalidArgumentError{Kind: "service endpoint", Value: endpoints.Service, Message: err.Error()}
		}
	}

	return &Client{
		env:       env,
		endpoints: endpoints,
		clientKey: key,
		service:   service,
		logger:    logger.With(slog.String("environment", env.String())),
	}, nil
}

func clientKeyFor(production bool, clientKey string) (string, error) {
	if !production {
		return TestClientKey, nil
	}
	if clientKey == "" {
		return "", &InvalidArgumentError{
			Kind:    "client key",
			Message: "Client key is required for production use",
		}
	}
	return clientKey, nil
}

// Environment returns the environment the client was created for
func (c *Client) Environment() Environment {
	return c.env
}

// Endpoints returns the configured WSDL and service locations
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// FindByRegon looks up an entity by its 9 or 14 digit REGON
func (c *Client) FindByRegon(ctx context.Context, regon string) (Record, error) {
	if err := ValidateRegon(regon); err != nil {
		return Record{}, err
	}
	return c.findByID(ctx, Regon, regon)
}

// FindByNip looks up an entity by its 10 digit NIP
func (c *Client) FindByNip(ctx context.Context, nip string) (Record, error) {
	if err := ValidateNip(nip); err != nil {
		return Record{}, err
	}
	return c.findByID(ctx, Nip, nip)
}

// FindEntityByRegon is FindByRegon with the result mapped to an Entity
func (c *Client) FindEntityByRegon(ctx context.Context, regon string) (*Entity, error) {
	r, err := c.FindByRegon(ctx, regon)
	if err != nil {
		return nil, err
	}
	return r.Entity(), nil
}

// FindEntityByNip is FindByNip with the result mapped to an Entity
func (c *Client) FindEntityByNip(ctx context.Context, nip string) (*Entity, error) {
	r, err := c.FindByNip(ctx, nip)
	if err != nil {
		return nil, err
	}
	return r.Entity(), nil
}

func (c *Client) findByID(ctx context.Context, kind IdentifierKind, value string) (Record, error) {
	log := c.logger.With(slog.String("kind", string(kind)))

	sid, err := c.signUp(ctx)
	if err != nil {
		return Record{}, err
	}

	resp, err := c.service.Search(ctx, sid, &bir.SearchRequest{Key: bir.SearchKey(kind), Value: value})
	if err != nil {
		log.Debug("search failed", slog.String("error", err.Error()))
		return Record{}, serviceFailure(err)
	}

	root, err := parseResult(resp.Data)
	if err != nil {
		return Record{}, err
	}

	data := firstChild(root, dataElement)
	if data == nil {
		return Record{}, &ServiceError{Message: "result has no dane element"}
	}

	if err := checkError(data); err != nil {
		log.Debug("search returned an error", slog.String("error", err.Error()))
		return Record{}, err
	}

	return flatten(data), nil
}

// GetReport fetches a full report for a REGON
func (c *Client) GetReport(ctx context.Context, regon string, reportType ReportType) (Record, error) {
	if err := ValidateRegon(regon); err != nil {
		return Record{}, err
	}
	if err := ValidateReportType(string(reportType)); err != nil {
		return Record{}, err
	}

	log := c.logger.With(slog.String("report_type", string(reportType)))

	sid, err := c.signUp(ctx)
	if err != nil {
		return Record{}, err
	}

	resp, err := c.service.FullReport(ctx, sid, &bir.ReportRequest{Regon: regon, ReportName: string(reportType)})
	if err != nil {
		log.Debug("full report failed", slog.String("error", err.Error()))
		return Record{}, serviceFailure(err)
	}

	root, err := parseResult(resp.Data)
	if err != nil {
		return Record{}, err
	}

	data := root
	if reportType.IsPKD() {
		// An error is reported inside the first dane row.
		if first := firstChild(root, dataElement); first != nil {
			if err := checkError(first); err != nil {
				log.Debug("report returned an error", slog.String("error", err.Error()))
				return Record{}, err
			}
		}
	} else {
		data = firstChild(root, dataElement)
		if data == nil {
			return Record{}, &ServiceError{Message: "result has no dane element"}
		}
	}

	if err := checkError(data); err != nil {
		log.Debug("report returned an error", slog.String("error", err.Error()))
		return Record{}, err
	}

	return flatten(data), nil
}

// parseResult reads the XML document embedded in a result field
func parseResult(data string) (*etree.Element, error) {
	if strings.TrimSpace(data) == "" {
		return nil, &ServiceError{Message: "empty result from service"}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		return nil, &ServiceError{Message: "failed to parse result: " + err.Error(), Err: err}
	}

	root := doc.Root()
	if root == nil {
		return nil, &ServiceError{Message: "result has no root element"}
	}
	return root, nil
}

// checkError maps an ErrorCode child (or attribute) of a data element
func checkError(data *etree.Element) error {
	var code string
	if el := firstChild(data, errorCodeElement); el != nil {
		code = strings.TrimSpace(el.Text())
	} else {
		code = strings.TrimSpace(data.SelectAttrValue(errorCodeElement, ""))
	}
	if code == "" {
		return nil
	}

	var message string
	if el := firstChild(data, errorMsgElement); el != nil {
		message = el.Text()
	} else {
		message = data.SelectAttrValue(errorMsgElement, "")
	}

	return remoteError(code, message)
}

// firstChild returns the first direct child with the given tag
func firstChild(el *etree.Element, tag string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}
