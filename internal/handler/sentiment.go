package handler

import (
	"net/http"

	"github.com/osse101/SentimentService_Go/internal/domain"
	"github.com/osse101/SentimentService_Go/internal/logger"
	"github.com/osse101/SentimentService_Go/internal/query"
	"github.com/osse101/SentimentService_Go/internal/sentiment"
)

// ClassificationRecorder receives the label of every classified text
type ClassificationRecorder interface {
	RecordClassification(label domain.Label)
}

type noopRecorder struct{}

func (noopRecorder) RecordClassification(domain.Label) {}

// HandleSentiment classifies the "text" query parameter
// @Summary Classify text sentiment
// @Description Labels text as positive, negative or neutral by keyword matching
// @Tags sentiment
// @Produce json
// @Param text query string true "Text to classify"
// @Success 200 {object} object "Classification result"
// @Failure 400 {object} object "Missing text parameter"
// @Router /api/sentiment [get]
func HandleSentiment(classifier sentiment.Classifier, recorder ClassificationRecorder) http.HandlerFunc {
	if recorder == nil {
		recorder = noopRecorder{}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		// The raw query is parsed by hand so malformed input reads as "absent" and duplicates resolve last-wins
		text, ok := query.Lookup(r.URL.RawQuery, QueryParamText)
		if !ok {
			log.Warn(LogMsgMissingTextParam, "error", domain.ErrTextRequired)
			respondError(w, r, http.StatusBadRequest, domain.ErrTextRequired.Error())
			return
		}

		result := classifier.Classify(text)
		recorder.RecordClassification(result.Sentiment)
		log.Debug(LogMsgTextClassified,
			"sentiment", result.Sentiment,
			"score", result.Score,
			"text_length", len(text))

		buf := getBuffer()
		defer putBuffer(buf)

		writeResultJSON(buf, result)
		respondJSON(w, r, http.StatusOK, buf)
	}
}
