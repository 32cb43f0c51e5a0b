package eval

// Metrics are the confusion counts of one comparison and the scores derived from them.
type Metrics struct {
	TP        int     `json:"tp"`
	FP        int     `json:"fp"`
	FN        int     `json:"fn"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// NewMetrics computes precision, recall and F1 for the given counts.
func NewMetrics(tp, fp, fn int) Metrics {
	return Metrics{
		TP:        tp,
		FP:        fp,
		FN:        fn,
		Precision: Precision(tp, fp),
		Recall:    Recall(tp, fn),
		F1:        F1(tp, fp, fn),
	}
}

// Precision is tp/(tp+fp), or 0.
func Precision(tp, fp int) float64 {
	return ratio(tp, tp+fp)
}

// Recall is tp/(tp+fn), or 0.
func Recall(tp, fn int) float64 {
	return ratio(tp, tp+fn)
}

// F1 is 2tp/(2tp+fp+fn), or 0 when nothing was expected or predicted.
func F1(tp, fp, fn int) float64 {
	return ratio(2*tp, 2*tp+fp+fn)
}

func ratio(num, denom int) float64 {
	if denom == 0 {
		return 0
	}
	return float64(num) / float64(denom)
}
