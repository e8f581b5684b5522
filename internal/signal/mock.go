package signal

import "context"

// MockTrends returns controllable fixed data for development and testing.
type MockTrends struct {
	Value float64
	Err   error
	Calls int
}

func (m *MockTrends) InterestOverTime(_ context.Context, _, _ string) (float64, error) {
	m.Calls++
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Value, nil
}

// MockNews returns controllable fixed articles for development and testing.
type MockNews struct {
	Articles []Article
	Err      error
	Calls    int
}

func (m *MockNews) Everything(_ context.Context, _ string) ([]Article, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Articles, nil
}
