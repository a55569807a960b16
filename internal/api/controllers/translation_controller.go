package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicrm/internal/models/request_models"
	"clinicrm/internal/services"
	"clinicrm/pkg/utils"
)

type TranslationController struct {
	translationService services.TranslationServiceInterface
}

func NewTranslationController(translationService services.TranslationServiceInterface) *TranslationController {
	return &TranslationController{
		translationService: translationService,
	}
}

// CreateLanguage godoc
// @Summary Register a language
// @Tags I18n
// @Accept json
// @Produce json
// @Param request body request_models.CreateLanguageRequest true "Language payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /i18n/languages [post]
func (tc *TranslationController) CreateLanguage(c *gin.Context) {
	var req request_models.CreateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := tc.translationService.CreateLanguage(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Language created successfully")
}

// ListLanguages godoc
// @Summary List languages
// @Tags I18n
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /i18n/languages [get]
func (tc *TranslationController) ListLanguages(c *gin.Context) {

	languages, err := tc.translationService.ListLanguages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, languages, "Languages fetched successfully")
}

// CreateTranslation godoc
// @Summary Add a translation
// @Tags I18n
// @Accept json
// @Produce json
// @Param request body request_models.CreateTranslationRequest true "Translation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /i18n/translations [post]
func (tc *TranslationController) CreateTranslation(c *gin.Context) {
	var req request_models.CreateTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := tc.translationService.CreateTranslation(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Translation created successfully")
}

// GetTranslations godoc
// @Summary Fetch translations for a language
// @Description Language resolved from the lang query param, then Accept-Language, then the configured default
// @Tags I18n
// @Produce json
// @Param lang query string false "Language code"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /i18n/translations [get]
func (tc *TranslationController) GetTranslations(c *gin.Context) {

	translations, err := tc.translationService.GetTranslations(
		c.Request.Context(),
		c.Query("lang"),
		c.GetHeader("Accept-Language"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, translations, "Translations fetched successfully")
}
