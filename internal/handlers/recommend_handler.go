package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"aitrustyou/outfit-recommender/internal/i18n"
	"aitrustyou/outfit-recommender/internal/models"
	"aitrustyou/outfit-recommender/internal/services"
)

type RecommendHandler struct {
	recommender services.RecommenderService
	loader      services.GarmentLoader
	defaultTag  language.Tag
}

func NewRecommendHandler(
	recommender services.RecommenderService,
	loader services.GarmentLoader,
	defaultTag language.Tag,
) *RecommendHandler {
	return &RecommendHandler{
		recommender: recommender,
		loader:      loader,
		defaultTag:  defaultTag,
	}
}

// HandleRecommend handles POST /recommend
func (h *RecommendHandler) HandleRecommend(c *fiber.Ctx) error {
	tag := h.resolveTag(c)
	printer := i18n.Printer(tag)

	form, err := c.MultipartForm()
	if err != nil {
		// A submission without any file parts is a missing-garments case.
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: printer.Sprintf(i18n.MissingGarments),
			Kind:  string(services.KindValidation),
		})
	}

	selection, err := h.loader.LoadSelection(form)
	if err != nil {
		return h.renderError(c, printer, err)
	}

	rec, err := h.recommender.Recommend(c.UserContext(), selection)
	if err != nil {
		return h.renderError(c, printer, err)
	}

	if c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON {
		return c.JSON(models.RecommendResponse{
			BestIndex:  rec.BestIndex,
			BestOption: rec.BestOption(),
			Results:    rec.Results,
		})
	}

	fragment, err := services.NewRenderer(tag).HTML(rec)
	if err != nil {
		return h.renderError(c, printer, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(fragment)
}

func (h *RecommendHandler) resolveTag(c *fiber.Ctx) language.Tag {
	if tag, ok := i18n.ParseTag(c.Query("lang")); ok {
		return tag
	}
	return i18n.MatchAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage), h.defaultTag)
}

func (h *RecommendHandler) renderError(c *fiber.Ctx, printer *message.Printer, err error) error {
	text := services.UserMessage(printer, err)

	var re *services.RecommendError
	if !errors.As(err, &re) {
		log.Printf("❌ Recommendation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: text,
			Kind:  "internal",
		})
	}

	response := models.ErrorResponse{Error: text, Kind: string(re.Kind)}
	if re.Kind == services.KindValidation {
		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	if re.Kind == services.KindStatus {
		response.UpstreamStatus = re.StatusCode
	}
	log.Printf("⚠️  Recommendation failed: %v", err)
	return c.Status(fiber.StatusBadGateway).JSON(response)
}
