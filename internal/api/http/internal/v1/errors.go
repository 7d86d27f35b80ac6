package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	InvalidResumeFileCode            = 2001
	InvalidResumeFileMessage         = "invalid resume file"
	ConsentRequiredCode              = 2002
	ConsentRequiredMessage           = "consent is required"
	PaymentVerificationFailedCode    = 2003
	PaymentVerificationFailedMessage = "payment verification failed"
	PaymentSystemUnavailableCode     = 2004
	PaymentSystemUnavailableMessage  = "payment system unavailable, please contact support"
	SerialAllocationFailedCode       = 2005
	SerialAllocationFailedMessage    = "registration failed, please try again"
	PersistenceFailedCode            = 2006
	PersistenceFailedMessage         = "registration failed, please try again"
	ResumeNotFoundCode               = 2007
	ResumeNotFoundMessage            = "resume file not found"
	ResumeUnreadableCode             = 2008
	ResumeUnreadableMessage          = "resume file could not be parsed"

	AdminInvalidCredentialsCode    = 3001
	AdminInvalidCredentialsMessage = "invalid credentials"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case InvalidResumeFileCode:
		errorStruct.ErrorCode = InvalidResumeFileCode
		errorStruct.ErrorMessage = InvalidResumeFileMessage
	case ConsentRequiredCode:
		errorStruct.ErrorCode = ConsentRequiredCode
		errorStruct.ErrorMessage = ConsentRequiredMessage
	case PaymentVerificationFailedCode:
		errorStruct.ErrorCode = PaymentVerificationFailedCode
		errorStruct.ErrorMessage = PaymentVerificationFailedMessage
	case PaymentSystemUnavailableCode:
		errorStruct.ErrorCode = PaymentSystemUnavailableCode
		errorStruct.ErrorMessage = PaymentSystemUnavailableMessage
	case SerialAllocationFailedCode:
		errorStruct.ErrorCode = SerialAllocationFailedCode
		errorStruct.ErrorMessage = SerialAllocationFailedMessage
	case PersistenceFailedCode:
		errorStruct.ErrorCode = PersistenceFailedCode
		errorStruct.ErrorMessage = PersistenceFailedMessage
	case ResumeNotFoundCode:
		errorStruct.ErrorCode = ResumeNotFoundCode
		errorStruct.ErrorMessage = ResumeNotFoundMessage
	case ResumeUnreadableCode:
		errorStruct.ErrorCode = ResumeUnreadableCode
		errorStruct.ErrorMessage = ResumeUnreadableMessage
	case AdminInvalidCredentialsCode:
		errorStruct.ErrorCode = AdminInvalidCredentialsCode
		errorStruct.ErrorMessage = AdminInvalidCredentialsMessage
	}

	return errorStruct
}
