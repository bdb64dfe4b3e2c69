package textract

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"lcintel/internal/port"
)

type textractReader struct {
	client *textract.Client
}

// NewTextractReader creates a Textract-backed OCRReader.
func NewTextractReader(region string) (port.OCRReader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for Textract: %w", err)
	}
	return &textractReader{client: textract.NewFromConfig(cfg)}, nil
}

// ReadText runs synchronous text detection and returns the detected
// lines in reading order, one per line.
func (r *textractReader) ReadText(ctx context.Context, fileBytes []byte) (string, error) {
	out, err := r.client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{Bytes: fileBytes},
	})
	if err != nil {
		return "", fmt.Errorf("textract text detection: %w", err)
	}

	var b strings.Builder
	for _, block := range out.Blocks {
		if block.BlockType != types.BlockTypeLine || block.Text == nil {
			continue
		}
		b.WriteString(*block.Text)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
