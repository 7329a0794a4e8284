package types

import "slices"

// DemandText is the initial demand filed to open a collection case.
type DemandText struct {
	Header                  *string  `json:"header"`
	Summary                 *string  `json:"summary"`
	Court                   *string  `json:"court"`
	Opening                 *string  `json:"opening"`
	MissingPaymentArguments []string `json:"missing_payment_arguments"`
	MainRequest             *string  `json:"main_request"`
	AdditionalRequests      *string  `json:"additional_requests"`
}

// DocumentType implements Document.
func (d *DemandText) DocumentType() DocumentType { return DocumentTypeDemandText }

// Section implements Document.
func (d *DemandText) Section(name string) (*string, bool) {
	switch name {
	case SectionHeader:
		return d.Header, true
	case SectionSummary:
		return d.Summary, true
	case SectionCourt:
		return d.Court, true
	case SectionOpening:
		return d.Opening, true
	case SectionMainRequest:
		return d.MainRequest, true
	case SectionAdditionalRequests:
		return d.AdditionalRequests, true
	}
	return nil, false
}

// ListSection implements Document.
func (d *DemandText) ListSection(name string) ([]string, bool) {
	if name == SectionMissingPaymentArguments {
		return d.MissingPaymentArguments, true
	}
	return nil, false
}

func (d *DemandText) replace(name string, text *string) (Document, error) {
	cp := *d
	cp.MissingPaymentArguments = slices.Clone(d.MissingPaymentArguments)
	switch name {
	case SectionHeader:
		cp.Header = text
	case SectionSummary:
		cp.Summary = text
	case SectionCourt:
		cp.Court = text
	case SectionOpening:
		cp.Opening = text
	case SectionMainRequest:
		cp.MainRequest = text
	case SectionAdditionalRequests:
		cp.AdditionalRequests = text
	default:
		return nil, &SectionError{DocumentType: d.DocumentType(), Section: name, Message: "not a scalar section"}
	}
	return &cp, nil
}

// ExceptionsResponse answers the defendant's exceptions.
type ExceptionsResponse struct {
	Summary            *string  `json:"summary"`
	Court              *string  `json:"court"`
	Opening            *string  `json:"opening"`
	ExceptionResponses []string `json:"exception_responses"`
	MainRequest        *string  `json:"main_request"`
	AdditionalRequests *string  `json:"additional_requests"`
}

// DocumentType implements Document.
func (d *ExceptionsResponse) DocumentType() DocumentType { return DocumentTypeExceptionsResponse }

// Section implements Document.
func (d *ExceptionsResponse) Section(name string) (*string, bool) {
	switch name {
	case SectionSummary:
		return d.Summary, true
	case SectionCourt:
		return d.Court, true
	case SectionOpening:
		return d.Opening, true
	case SectionMainRequest:
		return d.MainRequest, true
	case SectionAdditionalRequests:
		return d.AdditionalRequests, true
	}
	return nil, false
}

// ListSection implements Document.
func (d *ExceptionsResponse) ListSection(name string) ([]string, bool) {
	if name == SectionExceptionResponses {
		return d.ExceptionResponses, true
	}
	return nil, false
}

func (d *ExceptionsResponse) replace(name string, text *string) (Document, error) {
	cp := *d
	cp.ExceptionResponses = slices.Clone(d.ExceptionResponses)
	switch name {
	case SectionSummary:
		cp.Summary = text
	case SectionCourt:
		cp.Court = text
	case SectionOpening:
		cp.Opening = text
	case SectionMainRequest:
		cp.MainRequest = text
	case SectionAdditionalRequests:
		cp.AdditionalRequests = text
	default:
		return nil, &SectionError{DocumentType: d.DocumentType(), Section: name, Message: "not a scalar section"}
	}
	return &cp, nil
}

// DispatchResolution is the court's dispatch resolution on a filing.
type DispatchResolution struct {
	Header  *string `json:"header"`
	Court   *string `json:"court"`
	Content *string `json:"content"`
}

// DocumentType implements Document.
func (d *DispatchResolution) DocumentType() DocumentType { return DocumentTypeDispatchResolution }

// Section implements Document.
func (d *DispatchResolution) Section(name string) (*string, bool) {
	switch name {
	case SectionHeader:
		return d.Header, true
	case SectionCourt:
		return d.Court, true
	case SectionContent:
		return d.Content, true
	}
	return nil, false
}

// ListSection implements Document.
func (d *DispatchResolution) ListSection(string) ([]string, bool) {
	return nil, false
}

func (d *DispatchResolution) replace(name string, text *string) (Document, error) {
	cp := *d
	switch name {
	case SectionHeader:
		cp.Header = text
	case SectionCourt:
		cp.Court = text
	case SectionContent:
		cp.Content = text
	default:
		return nil, &SectionError{DocumentType: d.DocumentType(), Section: name, Message: "not a scalar section"}
	}
	return &cp, nil
}

// Withdrawal withdraws a previously filed demand.
type Withdrawal struct {
	Header      *string `json:"header"`
	Summary     *string `json:"summary"`
	Court       *string `json:"court"`
	Content     *string `json:"content"`
	MainRequest *string `json:"main_request"`
}

// DocumentType implements Document.
func (d *Withdrawal) DocumentType() DocumentType { return DocumentTypeWithdrawal }

// Section implements Document.
func (d *Withdrawal) Section(name string) (*string, bool) {
	switch name {
	case SectionHeader:
		return d.Header, true
	case SectionSummary:
		return d.Summary, true
	case SectionCourt:
		return d.Court, true
	case SectionContent:
		return d.Content, true
	case SectionMainRequest:
		return d.MainRequest, true
	}
	return nil, false
}

// ListSection implements Document.
func (d *Withdrawal) ListSection(string) ([]string, bool) {
	return nil, false
}

func (d *Withdrawal) replace(name string, text *string) (Document, error) {
	cp := *d
	switch name {
	case SectionHeader:
		cp.Header = text
	case SectionSummary:
		cp.Summary = text
	case SectionCourt:
		cp.Court = text
	case SectionContent:
		cp.Content = text
	case SectionMainRequest:
		cp.MainRequest = text
	default:
		return nil, &SectionError{DocumentType: d.DocumentType(), Section: name, Message: "not a scalar section"}
	}
	return &cp, nil
}

// newDocument allocates the empty structure for a document type.
func newDocument(dt DocumentType) (Document, error) {
	switch dt {
	case DocumentTypeDemandText:
		return &DemandText{}, nil
	case DocumentTypeExceptionsResponse:
		return &ExceptionsResponse{}, nil
	case DocumentTypeDispatchResolution:
		return &DispatchResolution{}, nil
	case DocumentTypeWithdrawal:
		return &Withdrawal{}, nil
	}
	return nil, &UnknownDocumentTypeError{Value: string(dt)}
}
