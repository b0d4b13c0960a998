package usecases

// UseCases bundles the application's use cases for wiring into handlers.
type UseCases struct {
	Assessment *AssessmentUseCase
	Aggregate  *AggregateUseCase
	Comment    *CommentUseCase
	Search     *SearchUseCase
	Transfer   *TransferUseCase
}
