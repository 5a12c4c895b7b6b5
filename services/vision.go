package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// ErrRecognition wraps every label-detection failure so the workflow
// can map it to a single user-visible error.
var ErrRecognition = errors.New("label detection failed")

// LabelDetector turns raw image bytes into free-text labels.
// Implementations are injected; tests use a deterministic fake.
type LabelDetector interface {
	DetectLabels(ctx context.Context, image []byte) ([]string, error)
}

type RekognitionDetector struct {
	client        *rekognition.Client
	maxLabels     int32
	minConfidence float32
}

func NewRekognitionDetector(ctx context.Context, region string) (*RekognitionDetector, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &RekognitionDetector{
		client:        rekognition.NewFromConfig(cfg),
		maxLabels:     10,
		minConfidence: 75,
	}, nil
}

// DetectLabels returns the top labels for the image.
func (r *RekognitionDetector) DetectLabels(ctx context.Context, image []byte) ([]string, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrRecognition)
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(r.maxLabels),
		MinConfidence: aws.Float32(r.minConfidence),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecognition, err)
	}

	var labels []string
	for _, l := range out.Labels {
		labels = append(labels, aws.ToString(l.Name))
	}
	return labels, nil
}
