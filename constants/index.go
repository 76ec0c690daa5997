package constants

const (
	ROLE_ADMIN  = "ADMIN"
	ROLE_OWNER  = "OWNER"
	ROLE_CLIENT = "CLIENT"
)

const (
	ERROR_INPUT                 = "Invalid input data"
	ERROR_PARSE_DATA_TO_LOCALS  = "Cannot read validated input"
	ERROR_INTERNAL_ERROR        = "Internal server error"
	ERROR_CREATE                = "Create failed"
	ERROR_EDIT                  = "Update failed"
	ERROR_DELETE                = "Delete failed"
	ERROR_QUERY                 = "Query failed"
	ERROR_COUNT                 = "Count failed"
	DATA_INPUT_IS_NOT_NUMBER    = "Parameter must be a number"
	ID_REQUIRED_FOR_UPDATE      = "An id is required to update"
	ID_NOT_ALLOWED_FOR_CREATE   = "A new entity cannot already have an id"
	NOT_FOUND                   = "Entity not found"
	NOT_ADMIN                   = "Administrator role required"
	NOT_PERMISSION              = "Not permitted"
	INVALID_CREDENTIALS         = "Invalid login or password"
	ACCOUNT_DISABLED            = "Account is disabled"
	LOGIN_EXISTS                = "Login already in use"
	EMAIL_EXISTS                = "Email already in use"
	SUBSCRIBER_EXISTS           = "Email already subscribed"
	SALON_NAME_EXISTS           = "Salon name already in use"
	MISSING_RELATED_ENTITY      = "Related entity does not exist"
	PRICE_RANGE_INVALID         = "priceLow must not exceed priceHigh"
	CATEGORY_CYCLE              = "Category cannot be its own ancestor"
	INVALID_CRITERIA            = "Invalid filter parameter"
	INVALID_SORT                = "Invalid sort parameter"
	SEARCH_UNAVAILABLE          = "Search index unavailable"
	RECORD_TIME_INVALID         = "startAt must be before endAt"
	CAN_NOT_GENERATE_TOKEN      = "Cannot generate token"
	CAN_NOT_UPLOAD_IMAGE        = "Image upload failed"
)
