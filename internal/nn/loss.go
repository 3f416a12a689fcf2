package nn

import (
	"fmt"
	"math"

	"github.com/flint-ml/flint/internal/tensor"
)

// MSELoss computes the mean squared error between predictions and
// targets, and the gradient of the loss with respect to the
// predictions.
//
// Loss = mean((pred - target)^2)
// Gradient = 2 * (pred - target) / n
//
// Both tensors must have identical shapes.
func MSELoss(pred, target *tensor.Tensor[float64]) (float64, *tensor.Tensor[float64], error) {
	if !pred.Shape().Equal(target.Shape()) {
		return 0, nil, fmt.Errorf("%w: prediction %v vs target %v",
			tensor.ErrIncompatibleShape, pred.Shape(), target.Shape())
	}

	diff, err := pred.SubTo(target)
	if err != nil {
		return 0, nil, err
	}

	n := float64(diff.Elements())
	loss := tensor.Accumulate(diff.View(), 0.0, func(acc, d float64) float64 {
		return acc + d*d
	}) / n

	diff.MulScalar(2.0 / n)
	return loss, diff, nil
}

// CrossEntropyLoss computes softmax cross-entropy over a batch of
// logits against integer class labels.
//
// Uses the log-sum-exp decomposition for numerical stability. The
// returned gradient with respect to the logits is
//
//	(softmax(logits) - one_hot(labels)) / batch_size
//
// Parameters:
//   - logits: unnormalized scores with shape [batch_size, num_classes]
//   - labels: ground-truth class indices, one per batch row
//
// Returns the mean loss over the batch and the logits gradient.
func CrossEntropyLoss(logits *tensor.Tensor[float64], labels []int) (float64, *tensor.Tensor[float64], error) {
	s := logits.Shape()
	if s.Rank() != 2 {
		return 0, nil, fmt.Errorf("%w: logits must be 2D [batch, classes], got %v",
			tensor.ErrIncompatibleShape, s)
	}
	batch, classes := s.Len(0), s.Len(1)
	if len(labels) != batch {
		return 0, nil, fmt.Errorf("%w: %d labels for batch of %d",
			tensor.ErrIncompatibleShape, len(labels), batch)
	}
	for i, label := range labels {
		if label < 0 || label >= classes {
			return 0, nil, fmt.Errorf("%w: label %d at row %d, want [0, %d)",
				tensor.ErrOutOfRange, label, i, classes)
		}
	}

	probs := Softmax(logits)
	data := probs.Data()

	loss := 0.0
	for i, label := range labels {
		p := data[i*classes+label]
		loss -= math.Log(math.Max(p, 1e-300))
	}
	loss /= float64(batch)

	// probs becomes the gradient in place.
	for i, label := range labels {
		data[i*classes+label] -= 1.0
	}
	probs.MulScalar(1.0 / float64(batch))

	return loss, probs, nil
}
