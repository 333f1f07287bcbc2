package service

// Error 业务错误，Message 可直接返回给客户端
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrRecordNotExist    = &Error{Message: "Record does not Exist"}
	ErrInvalidActor      = &Error{Message: "Invalid Actor Assigned"}
	ErrInvalidMovie      = &Error{Message: "Invalid Movie Record"}
	ErrInvalidPerson     = &Error{Message: "Invalid Person Record"}
	ErrInvalidPersonData = &Error{Message: "Invalid Person data."}
	ErrInvalidImageType  = &Error{Message: "Only .jpg, .jpeg and png type files are Allowed."}
)
