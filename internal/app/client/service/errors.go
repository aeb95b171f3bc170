package service

import "errors"

// ErrRequestFailed - транспортная ошибка, ответ не 2xx или ошибка декодирования
var ErrRequestFailed = errors.New("request failed")
