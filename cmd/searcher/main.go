// The searcher Lambda answers natural-language photo queries arriving
// through the API gateway.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lexruntime "github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	opensearch "github.com/opensearch-project/opensearch-go/v2"
	requestsigner "github.com/opensearch-project/opensearch-go/v2/signer/awsv2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/photodex/internal/config"
	logpkg "github.com/kailas-cloud/photodex/internal/logger"
	"github.com/kailas-cloud/photodex/internal/metrics"
	"github.com/kailas-cloud/photodex/internal/repository/photoindex"
	lambdaTransport "github.com/kailas-cloud/photodex/internal/transport/lambda"
	lexTransport "github.com/kailas-cloud/photodex/internal/transport/lex"
	"github.com/kailas-cloud/photodex/internal/transport/s3store"
	"github.com/kailas-cloud/photodex/internal/usecase/keywords"
	searchuc "github.com/kailas-cloud/photodex/internal/usecase/search"
	"github.com/kailas-cloud/photodex/internal/version"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger("lambda", cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Lex.Validate(); err != nil {
		logger.Fatal("Invalid bot config", zap.Error(err))
	}

	logger.Info("Starting photodex searcher",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("region", cfg.AWS.Region),
		zap.String("search_host", cfg.Search.Host),
		zap.String("search_index", cfg.Search.Index),
	)

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		logger.Fatal("Failed to load AWS config", zap.Error(err))
	}

	signer, err := requestsigner.NewSignerWithService(awsCfg, cfg.Search.Service)
	if err != nil {
		logger.Fatal("Failed to create request signer", zap.Error(err))
	}
	osClient, err := opensearch.NewClient(opensearch.Config{
		Addresses: []string{"https://" + cfg.Search.Host},
		Signer:    signer,
	})
	if err != nil {
		logger.Fatal("Failed to create search client", zap.Error(err))
	}

	metrics.RegisterPipelineMetrics()

	recognizer := lexTransport.New(lexruntime.NewFromConfig(awsCfg), lexTransport.Config{
		BotID:      cfg.Lex.BotID,
		BotAliasID: cfg.Lex.BotAliasID,
		LocaleID:   cfg.Lex.LocaleID,
	})
	store := s3store.New(s3.NewFromConfig(awsCfg), cfg.Presign.TTL())
	repo := photoindex.New(osClient, cfg.Search.Index)

	keywordSvc := keywords.New(recognizer, logger)
	searchSvc := searchuc.New(keywordSvc, repo, store, logger)

	handler := lambdaTransport.NewSearcherHandler(searchSvc, logger)
	lambda.Start(handler.Handle)
}
