package services

import (
	"errors"
	"strconv"

	"golang.org/x/text/message"

	"aitrustyou/outfit-recommender/internal/i18n"
)

// UserMessage turns a recommendation error into the text shown to the user.
func UserMessage(printer *message.Printer, err error) string {
	var re *RecommendError
	if !errors.As(err, &re) {
		return printer.Sprintf(i18n.InvalidForm)
	}

	switch re.Kind {
	case KindValidation:
		switch {
		case errors.Is(err, ErrFileTooLarge):
			return printer.Sprintf(i18n.FileTooLarge, re.Filename, strconv.FormatInt(re.Limit, 10))
		case errors.Is(err, ErrUnreadableFile):
			return printer.Sprintf(i18n.FileUnreadable, re.Filename)
		default:
			return printer.Sprintf(i18n.MissingGarments)
		}
	case KindStatus:
		return printer.Sprintf(i18n.UpstreamStatus, strconv.Itoa(re.StatusCode))
	case KindDecode, KindContract:
		if errors.Is(err, ErrResponseTooLarge) {
			return printer.Sprintf(i18n.UpstreamTooLarge)
		}
		return printer.Sprintf(i18n.UpstreamInvalid)
	default:
		return printer.Sprintf(i18n.UpstreamFailed)
	}
}
