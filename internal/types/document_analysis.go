package types

// DemandTextAnalysis mirrors DemandText.
type DemandTextAnalysis struct {
	Header                  *Analysis   `json:"header"`
	Summary                 *Analysis   `json:"summary"`
	Court                   *Analysis   `json:"court"`
	Opening                 *Analysis   `json:"opening"`
	MissingPaymentArguments []*Analysis `json:"missing_payment_arguments"`
	MainRequest             *Analysis   `json:"main_request"`
	AdditionalRequests      *Analysis   `json:"additional_requests"`
	Overall                 *Analysis   `json:"overall"`
}

// DocumentType implements DocumentAnalysis.
func (a *DemandTextAnalysis) DocumentType() DocumentType { return DocumentTypeDemandText }

// Section implements DocumentAnalysis.
func (a *DemandTextAnalysis) Section(name string) *Analysis {
	switch name {
	case SectionHeader:
		return a.Header
	case SectionSummary:
		return a.Summary
	case SectionCourt:
		return a.Court
	case SectionOpening:
		return a.Opening
	case SectionMainRequest:
		return a.MainRequest
	case SectionAdditionalRequests:
		return a.AdditionalRequests
	}
	return nil
}

// ListSection implements DocumentAnalysis.
func (a *DemandTextAnalysis) ListSection(name string) []*Analysis {
	if name == SectionMissingPaymentArguments {
		return a.MissingPaymentArguments
	}
	return nil
}

// OverallAnalysis implements DocumentAnalysis.
func (a *DemandTextAnalysis) OverallAnalysis() *Analysis { return a.Overall }

// ExceptionsResponseAnalysis mirrors ExceptionsResponse.
type ExceptionsResponseAnalysis struct {
	Summary            *Analysis   `json:"summary"`
	Court              *Analysis   `json:"court"`
	Opening            *Analysis   `json:"opening"`
	ExceptionResponses []*Analysis `json:"exception_responses"`
	MainRequest        *Analysis   `json:"main_request"`
	AdditionalRequests *Analysis   `json:"additional_requests"`
	Overall            *Analysis   `json:"overall"`
}

// DocumentType implements DocumentAnalysis.
func (a *ExceptionsResponseAnalysis) DocumentType() DocumentType {
	return DocumentTypeExceptionsResponse
}

// Section implements DocumentAnalysis.
func (a *ExceptionsResponseAnalysis) Section(name string) *Analysis {
	switch name {
	case SectionSummary:
		return a.Summary
	case SectionCourt:
		return a.Court
	case SectionOpening:
		return a.Opening
	case SectionMainRequest:
		return a.MainRequest
	case SectionAdditionalRequests:
		return a.AdditionalRequests
	}
	return nil
}

// ListSection implements DocumentAnalysis.
func (a *ExceptionsResponseAnalysis) ListSection(name string) []*Analysis {
	if name == SectionExceptionResponses {
		return a.ExceptionResponses
	}
	return nil
}

// OverallAnalysis implements DocumentAnalysis.
func (a *ExceptionsResponseAnalysis) OverallAnalysis() *Analysis { return a.Overall }

// DispatchResolutionAnalysis mirrors DispatchResolution.
type DispatchResolutionAnalysis struct {
	Header  *Analysis `json:"header"`
	Court   *Analysis `json:"court"`
	Content *Analysis `json:"content"`
	Overall *Analysis `json:"overall"`
}

// DocumentType implements DocumentAnalysis.
func (a *DispatchResolutionAnalysis) DocumentType() DocumentType {
	return DocumentTypeDispatchResolution
}

// Section implements DocumentAnalysis.
func (a *DispatchResolutionAnalysis) Section(name string) *Analysis {
	switch name {
	case SectionHeader:
		return a.Header
	case SectionCourt:
		return a.Court
	case SectionContent:
		return a.Content
	}
	return nil
}

// ListSection implements DocumentAnalysis.
func (a *DispatchResolutionAnalysis) ListSection(string) []*Analysis { return nil }

// OverallAnalysis implements DocumentAnalysis.
func (a *DispatchResolutionAnalysis) OverallAnalysis() *Analysis { return a.Overall }

// WithdrawalAnalysis mirrors Withdrawal.
type WithdrawalAnalysis struct {
	Header      *Analysis `json:"header"`
	Summary     *Analysis `json:"summary"`
	Court       *Analysis `json:"court"`
	Content     *Analysis `json:"content"`
	MainRequest *Analysis `json:"main_request"`
	Overall     *Analysis `json:"overall"`
}

// DocumentType implements DocumentAnalysis.
func (a *WithdrawalAnalysis) DocumentType() DocumentType { return DocumentTypeWithdrawal }

// Section implements DocumentAnalysis.
func (a *WithdrawalAnalysis) Section(name string) *Analysis {
	switch name {
	case SectionHeader:
		return a.Header
	case SectionSummary:
		return a.Summary
	case SectionCourt:
		return a.Court
	case SectionContent:
		return a.Content
	case SectionMainRequest:
		return a.MainRequest
	}
	return nil
}

// ListSection implements DocumentAnalysis.
func (a *WithdrawalAnalysis) ListSection(string) []*Analysis { return nil }

// OverallAnalysis implements DocumentAnalysis.
func (a *WithdrawalAnalysis) OverallAnalysis() *Analysis { return a.Overall }

func newDocumentAnalysis(dt DocumentType) (DocumentAnalysis, error) {
	switch dt {
	case DocumentTypeDemandText:
		return &DemandTextAnalysis{}, nil
	case DocumentTypeExceptionsResponse:
		return &ExceptionsResponseAnalysis{}, nil
	case DocumentTypeDispatchResolution:
		return &DispatchResolutionAnalysis{}, nil
	case DocumentTypeWithdrawal:
		return &WithdrawalAnalysis{}, nil
	}
	return nil, &UnknownDocumentTypeError{Value: string(dt)}
}
