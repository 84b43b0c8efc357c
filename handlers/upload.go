package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hiringplatform/backend/resume"
)

// readResumeUpload reads the multipart "file" field, enforcing the size cap and
// the supported extensions. It writes the error response itself.
func readResumeUpload(c *gin.Context, parser *resume.Parser, maxBytes int64) ([]byte, string, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Resume file is required", err.Error())
		return nil, "", false
	}
	defer file.Close()

	tooLarge := fmt.Sprintf("File size exceeds %dMB limit", maxBytes/(1024*1024))
	if header.Size > maxBytes {
		respondError(c, http.StatusRequestEntityTooLarge, tooLarge, "")
		return nil, "", false
	}

	content, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read file", err.Error())
		return nil, "", false
	}
	if int64(len(content)) > maxBytes {
		respondError(c, http.StatusRequestEntityTooLarge, tooLarge, "")
		return nil, "", false
	}

	if !parser.IsSupportedFormat(header.Filename) {
		respondError(c, http.StatusBadRequest, "Invalid file format. Only PDF and DOCX files are supported.", "")
		return nil, "", false
	}

	return content, header.Filename, true
}
