package test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"smartcloset/services"
	"smartcloset/storage"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	var body string
	if param != nil {
		body = JsonString(param)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func NewJSONRequestRaw(method string, target string, json string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(json))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

// Serve runs one request through the echo instance.
func Serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func NewRefString(data string) *string {
	return &data
}

func NewRefFloat(data float64) *float64 {
	return &data
}

// GenAIInvokerMock replays Responses in order, repeating the last one, and
// records every request it receives.
type GenAIInvokerMock struct {
	mu        sync.Mutex
	Responses []string
	Err       error
	Requests  []services.GenerationRequest
}

func NewGenAIInvokerMock(responses ...string) *GenAIInvokerMock {
	return &GenAIInvokerMock{Responses: responses}
}

func (m *GenAIInvokerMock) Generate(ctx context.Context, req services.GenerationRequest) (*services.LLMResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	text := ""
	if len(m.Responses) > 0 {
		index := len(m.Requests) - 1
		if index >= len(m.Responses) {
			index = len(m.Responses) - 1
		}
		text = m.Responses[index]
	}
	return &services.LLMResponse{Response: text, IsTest: true}, nil
}

func (m *GenAIInvokerMock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}

func (m *GenAIInvokerMock) LastRequest() services.GenerationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return services.GenerationRequest{}
	}
	return m.Requests[len(m.Requests)-1]
}

// FailIfCalledInvoker fails the test on any remote call.
type FailIfCalledInvoker struct {
	T *testing.T
}

func (f FailIfCalledInvoker) Generate(ctx context.Context, req services.GenerationRequest) (*services.LLMResponse, error) {
	f.T.Errorf("unexpected remote call to %s", req.Model)
	return nil, errors.New("remote call not allowed")
}

type TaskEnqueuerMock struct {
	mu       sync.Mutex
	Tasks    []*asynq.Task
	Err      error
	NextID   string
	NextInfo *asynq.TaskInfo
}

func (m *TaskEnqueuerMock) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	m.Tasks = append(m.Tasks, task)
	if m.NextInfo != nil {
		return m.NextInfo, nil
	}
	id := m.NextID
	if id == "" {
		id = "task-1"
	}
	return &asynq.TaskInfo{
		ID:      id,
		Queue:   "generate",
		Type:    task.Type(),
		Payload: task.Payload(),
		State:   asynq.TaskStatePending,
	}, nil
}

type TaskInspectorMock struct {
	Infos map[string]*asynq.TaskInfo
	Err   error
}

func (m *TaskInspectorMock) GetTaskInfo(queue string, id string) (*asynq.TaskInfo, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	info, ok := m.Infos[id]
	if !ok {
		return nil, asynq.ErrTaskNotFound
	}
	return info, nil
}

type Notification struct {
	DeviceToken string
	Title       string
	Body        string
	Data        map[string]string
}

type NotifierMock struct {
	mu   sync.Mutex
	Sent []Notification
	Err  error
}

func (m *NotifierMock) Notify(ctx context.Context, deviceToken string, title string, body string, data map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, Notification{DeviceToken: deviceToken, Title: title, Body: body, Data: data})
	return nil
}

// MemoryKV is an in-process storage.KeyValue. Setting FailWrites makes Set
// and Delete return an error.
type MemoryKV struct {
	mu         sync.Mutex
	Values     map[string]string
	FailWrites bool
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{Values: map[string]string{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.Values[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return value, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errors.New("write refused")
	}
	m.Values[key] = value
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errors.New("write refused")
	}
	delete(m.Values, key)
	return nil
}
