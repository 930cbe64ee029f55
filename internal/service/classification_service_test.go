package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"billsense/internal/classifier"
	"billsense/internal/domain"
	"billsense/internal/metrics"
	"billsense/internal/service"
	"billsense/mocks"
)

const billText = "Patient Statement\nAmount Due $450.32\nDr. Smith Family Clinic\nCPT 99214\nDate of Service 2024-03-01"

const eobText = "Acme Health Insurance\nThis is not a bill\nExplanation of Benefits\nMember ID 123456\n" +
	"Provider: Springfield Clinic\nDate of Service: 2024-03-01 Office visit\nAmount billed $300.00\nPlan Paid $120.00"

func newClassificationService(
	repo *mocks.MockClassificationRepo,
	cache *mocks.MockResultCache,
	opts service.ClassificationOptions,
) (service.ClassificationService, *metrics.Metrics) {
	m := metrics.New(prometheus.NewRegistry())
	if cache == nil {
		return service.NewClassificationService(classifier.Default(), repo, nil, m, zap.NewNop(), opts), m
	}
	return service.NewClassificationService(classifier.Default(), repo, cache, m, zap.NewNop(), opts), m
}

func TestClassificationService_Classify_EmptyText(t *testing.T) {
	repo := new(mocks.MockClassificationRepo)
	svc, _ := newClassificationService(repo, nil, service.ClassificationOptions{})

	out, err := svc.Classify(context.Background(), service.ClassifyInput{})
	assert.ErrorIs(t, err, domain.ErrEmptyText)
	assert.Nil(t, out)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClassificationService_Classify_WhitespaceIsInvalid(t *testing.T) {
	repo := new(mocks.MockClassificationRepo)
	svc, _ := newClassificationService(repo, nil, service.ClassificationOptions{})
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	out, err := svc.Classify(context.Background(), service.ClassifyInput{Text: "   \n"})
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentTypeInvalid, out.Result.Type)
	assert.Equal(t, 80, out.Result.Confidence)
	assert.Equal(t, classifier.MessageInsufficient, out.Result.UserMessage)
}

func TestClassificationService_Classify_HeaderWithBlankBody(t *testing.T) {
	for _, body := range []string{"", "\n"} {
		repo := new(mocks.MockClassificationRepo)
		svc, _ := newClassificationService(repo, nil, service.ClassificationOptions{})
		wantLen := len(billText) + 2 + len(body)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(rec *domain.ClassificationRecord) bool {
			return rec.TextLength == wantLen
		})).Return(nil)

		out, err := svc.Classify(context.Background(), service.ClassifyInput{Text: body, HeaderText: billText})
		require.NoError(t, err, "body %q", body)
		assert.Equal(t, domain.DocumentTypeMedicalBill, out.Result.Type)
		repo.AssertExpectations(t)
	}
}

func TestClassificationService_Classify_TextTooLarge(t *testing.T) {
	repo := new(mocks.MockClassificationRepo)
	svc, _ := newClassificationService(repo, nil, service.ClassificationOptions{MaxTextBytes: 64})

	out, err := svc.Classify(context.Background(), service.ClassifyInput{Text: strings.Repeat("x", 65)})
	assert.ErrorIs(t, err, domain.ErrTextTooLarge)
	assert.Nil(t, out)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClassificationService_Classify_MedicalBill(t *testing.T) {
	repo := new(mocks.MockClassificationRepo)
	svc, m := newClassificationService(repo, nil, service.ClassificationOptions{MaxTextBytes: 1 << 20})

	repo.On("Create", mock.Anything, mock.MatchedBy(func(rec *domain.ClassificationRecord) bool {
		return rec.RequestID == "req-1" &&
			rec.DocumentType == domain.DocumentTypeMedicalBill &&
			rec.Confidence == 77 &&
			rec.CanAnalyze &&
			rec.BillScore == 74 &&
			rec.RequiredCategoriesScore == 3 &&
			rec.TextLength == len(billText) &&
			len(rec.TextHash) == 64 &&
			!rec.CacheHit
	})).Return(nil)

	out, err := svc.Classify(context.Background(), service.ClassifyInput{Text: billText, RequestID: "req-1"})
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentTypeMedicalBill, out.Result.Type)
	assert.Equal(t, 77, out.Result.Confidence)
	assert.True(t, out.Result.CanAnalyze)
	assert.Equal(t, classifier.MessageMedicalBill, out.Result.UserMessage)
	assert.False(t, out.CacheHit)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Classifications.WithLabelValues("MEDICAL_BILL", "true")))
	repo.AssertExpectations(t)
}

func TestClassificationService_Classify_HeaderIsPrepended(t *testing.T) {
	repo := new(mocks.MockClassificationRepo)
	svc, _ := newClassificationService(repo, nil, service.ClassificationOptions{})

	header := "THIS IS NOT A BILL"
	repo.On("Create", mock.Anything, mock.MatchedBy(func(rec *domain.ClassificationRecord) bool {
		return rec.TextLength == len(header)+2+len(billText)
	})).Return(nil)

	out, err := svc.Classify(context.Background(), service.ClassifyInput{Text: billText, HeaderText: header})
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentTypeEOB, out.Result.Type)
	assert.Equal(t, 90, out.Result.Confidence)
	repo.AssertExpectations(t)
}

func TestComposeText(t *testing.T) {
	assert.Equal(t, "body", service.ComposeText("", "body"))
	assert.Equal(t, "  \n\nbody", service.ComposeText("  ", "body"))
	assert.Equal(t, "head\n\n", service.ComposeText("head", ""))
	assert.Equal(t, "head\n\nbody", service.ComposeText("head", "body"))
}

func TestClassificationService_Classify_CacheHit(t *testing.T) {
	repo := new(mocks.MockClassificationRepo)
	cache := new(mocks.MockResultCache)
	svc, m := newClassificationService(repo, cache, service.ClassificationOptions{})

	cached := classifier.Default().BuildMatrix(eobText)
	cache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(cached, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(rec *domain.ClassificationRecord) bool {
		return rec.CacheHit && rec.DocumentType == domain.DocumentTypeEOB
	})).Return(nil)

	out, err := svc.Classify(context.Background(), service.ClassifyInput{Text: eobText})
	require.NoError(t, err)
	assert.True(t, out.CacheHit)
	assert.Equal(t, domain.DocumentTypeEOB, out.Result.Type)
	assert.Equal(t, classifier.MessageEOB, out.Result.UserMessage)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestClassificationService_Classify_CacheMissStores(t *testing.T) {
	repo := new(mocks.MockClassificationRepo)
	cache := new(mocks.MockResultCache)
	svc, m := newClassificationService(repo, cache, service.ClassificationOptions{})

	var getKey, setKey string
	cache.On("Get", mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { getKey = args.String(1) }).
		Return(nil, domain.ErrCacheMiss)
	cache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(mx *classifier.Matrix) bool {
		return mx.FinalType == domain.DocumentTypeEOB
	})).Run(func(args mock.Arguments) { setKey = args.String(1) }).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	out, err := svc.Classify(context.Background(), service.ClassifyInput{Text: eobText})
	require.NoError(t, err)
	assert.False(t, out.CacheHit)
	assert.Equal(t, domain.DocumentTypeEOB, out.Result.Type)
	assert.Len(t, getKey, 64)
	assert.Equal(t, getKey, setKey)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")))
	cache.AssertExpectations(t)
}

func TestClassificationService_Classify_CacheKeyDependsOnText(t *testing.T) {
	repo := new(mocks.MockClassificationRepo)
	cache := new(mocks.MockResultCache)
	svc, _ := newClassificationService(repo, cache, service.ClassificationOptions{})

	var keys []string
	cache.On("Get", mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { keys = append(keys, args.String(1)) }).
		Return(nil, domain.ErrCacheMiss)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Classify(context.Background(), service.ClassifyInput{Text: billText})
	require.NoError(t, err)
	_, err = svc.Classify(context.Background(), service.ClassifyInput{Text: billText})
	require.NoError(t, err)
	_, err = svc.Classify(context.Background(), service.ClassifyInput{Text: eobText})
	require.NoError(t, err)

	require.Len(t, keys, 3)
	assert.Equal(t, keys[0], keys[1])
	assert.NotEqual(t, keys[0], keys[2])
}

func TestClassificationService_Classify_CacheKeyDependsOnVocabulary(t *testing.T) {
	tables := classifier.DefaultTables()
	tables.Negative = append(tables.Negative, "quotation")
	custom, err := classifier.New(tables, classifier.DefaultThresholds())
	require.NoError(t, err)

	var keys []string
	for _, c := range []*classifier.Classifier{classifier.Default(), custom} {
		repo := new(mocks.MockClassificationRepo)
		cache := new(mocks.MockResultCache)
		cache.On("Get", mock.Anything, mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { keys = append(keys, args.String(1)) }).
			Return(nil, domain.ErrCacheMiss)
		cache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		svc := service.NewClassificationService(c, repo, cache, metrics.New(prometheus.NewRegistry()), zap.NewNop(),
			service.ClassificationOptions{})
		_, err := svc.Classify(context.Background(), service.ClassifyInput{Text: billText})
		require.NoError(t, err)
	}

	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
}

func TestClassificationService_Classify_CacheErrorsAreSwallowed(t *testing.T) {
	repo := new(mocks.MockClassificationRepo)
	cache := new(mocks.MockResultCache)
	svc, m := newClassificationService(repo, cache, service.ClassificationOptions{})

	cache.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	out, err := svc.Classify(context.Background(), service.ClassifyInput{Text: billText})
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentTypeMedicalBill, out.Result.Type)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("error")))
}

func TestClassificationService_Classify_HistoryErrorIsSwallowed(t *testing.T) {
	repo := new(mocks.MockClassificationRepo)
	svc, m := newClassificationService(repo, nil, service.ClassificationOptions{})

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	out, err := svc.Classify(context.Background(), service.ClassifyInput{Text: billText})
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentTypeMedicalBill, out.Result.Type)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HistoryWriteErrors))
}

func TestClassificationService_Classify_InvalidIsRecordedAsNotAnalyzable(t *testing.T) {
	repo := new(mocks.MockClassificationRepo)
	svc, _ := newClassificationService(repo, nil, service.ClassificationOptions{})

	repo.On("Create", mock.Anything, mock.MatchedBy(func(rec *domain.ClassificationRecord) bool {
		return rec.DocumentType == domain.DocumentTypeInvalid && !rec.CanAnalyze && !rec.Disqualified
	})).Return(nil)

	out, err := svc.Classify(context.Background(), service.ClassifyInput{Text: "Hello world, a short note."})
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentTypeInvalid, out.Result.Type)
	assert.Equal(t, 80, out.Result.Confidence)
	assert.False(t, out.Result.CanAnalyze)
	assert.Equal(t, classifier.MessageInsufficient, out.Result.UserMessage)
	repo.AssertExpectations(t)
}

func TestClassificationService_Classify_LogsTrace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	repo := new(mocks.MockClassificationRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewClassificationService(classifier.Default(), repo, nil, nil, zap.New(core),
		service.ClassificationOptions{LogTrace: true})

	_, err := svc.Classify(context.Background(), service.ClassifyInput{Text: billText, RequestID: "req-9"})
	require.NoError(t, err)

	phases := logs.FilterMessage("classification phase").All()
	require.Len(t, phases, 4)
	assert.Equal(t, int64(1), phases[0].ContextMap()["phase"])
	assert.Equal(t, "final_determination", phases[3].ContextMap()["name"])
	assert.Equal(t, "MEDICAL_BILL (77%)", phases[3].ContextMap()["outcome"])

	done := logs.FilterMessage("document classified").All()
	require.Len(t, done, 1)
	assert.Equal(t, "req-9", done[0].ContextMap()["request_id"])
}

func TestClassificationService_Classify_TraceOffByDefault(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	repo := new(mocks.MockClassificationRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewClassificationService(classifier.Default(), repo, nil, nil, zap.New(core),
		service.ClassificationOptions{})

	_, err := svc.Classify(context.Background(), service.ClassifyInput{Text: billText})
	require.NoError(t, err)
	assert.Equal(t, 0, logs.FilterMessage("classification phase").Len())
}
