package dynamo

import (
	"Reminder/internal/model"
	"Reminder/internal/repo"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAPI struct{ mock.Mock }

var _ API = (*mockAPI)(nil)

func (m *mockAPI) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.GetItemOutput)
	return out, args.Error(1)
}

func (m *mockAPI) PutItem(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.PutItemOutput)
	return out, args.Error(1)
}

func (m *mockAPI) UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.UpdateItemOutput)
	return out, args.Error(1)
}

func (m *mockAPI) DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.DeleteItemOutput)
	return out, args.Error(1)
}

func (m *mockAPI) Query(ctx context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.QueryOutput)
	return out, args.Error(1)
}

func (m *mockAPI) Scan(ctx context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.ScanOutput)
	return out, args.Error(1)
}

func (m *mockAPI) DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.DescribeTableOutput)
	return out, args.Error(1)
}

func (m *mockAPI) CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.CreateTableOutput)
	return out, args.Error(1)
}

func imageURL(key string) string { return "http://cdn/bucket/" + key }

func storedTodo(t *testing.T, it todoItem) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(it)
	require.NoError(t, err)
	return av
}

func sampleTodoItem() todoItem {
	return todoItem{
		TodoID:    "t1",
		UserID:    "u1",
		Title:     "buy milk",
		CreatedAt: "2024-05-01T10:00:00.000Z",
		UpdatedAt: "2024-05-01T10:00:00.000Z",
	}
}

func TestTodoRepo_CreatePutsItemWithoutImageURL(t *testing.T) {
	api := &mockAPI{}
	r := NewTodoRepository(api, "todos", imageURL).(*todoRepo)
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed }

	var put *dynamodb.PutItemInput
	api.On("PutItem", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { put = args.Get(1).(*dynamodb.PutItemInput) }).
		Return(&dynamodb.PutItemOutput{}, nil)

	desc := "2 liters"
	got, err := r.Create(context.Background(), "u1", model.NewTodo{Title: "buy milk", Description: &desc})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.Completed)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)

	require.NotNil(t, put)
	assert.Equal(t, "todos", aws.ToString(put.TableName))
	assert.Contains(t, put.Item, "todoId")
	assert.Contains(t, put.Item, "description")
	assert.NotContains(t, put.Item, "imageUrl")
	assert.NotContains(t, put.Item, "imageKey")
	assert.Equal(t, &types.AttributeValueMemberS{Value: "2024-05-01T10:00:00.000Z"}, put.Item["createdAt"])
}

func TestTodoRepo_GetByID(t *testing.T) {
	api := &mockAPI{}
	r := NewTodoRepository(api, "todos", imageURL)

	it := sampleTodoItem()
	key := "u1/t1/1700000000000-cat.png"
	it.ImageKey = &key
	api.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
		return in.Key["todoId"].(*types.AttributeValueMemberS).Value == "t1"
	})).Return(&dynamodb.GetItemOutput{Item: storedTodo(t, it)}, nil)
	api.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

	got, err := r.GetByID(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", got.Title)
	assert.Equal(t, "http://cdn/bucket/"+key, got.ImageURL)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), got.CreatedAt)

	_, err = r.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTodoRepo_UpdateMissingDoesNotCreate(t *testing.T) {
	api := &mockAPI{}
	r := NewTodoRepository(api, "todos", imageURL)

	var upd *dynamodb.UpdateItemInput
	api.On("UpdateItem", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { upd = args.Get(1).(*dynamodb.UpdateItemInput) }).
		Return(nil, &types.ConditionalCheckFailedException{Message: aws.String("nope")})

	done := true
	_, err := r.Update(context.Background(), "missing", model.TodoPatch{Completed: &done})
	assert.ErrorIs(t, err, repo.ErrNotFound)
	require.NotNil(t, upd)
	require.NotNil(t, upd.ConditionExpression)
	assert.Contains(t, *upd.ConditionExpression, "attribute_exists")
}

func TestTodoRepo_UpdateSetsAndRemoves(t *testing.T) {
	api := &mockAPI{}
	r := NewTodoRepository(api, "todos", imageURL)

	updated := sampleTodoItem()
	updated.Title = "buy oat milk"
	updated.UpdatedAt = "2024-05-02T10:00:00.000Z"

	var upd *dynamodb.UpdateItemInput
	api.On("UpdateItem", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { upd = args.Get(1).(*dynamodb.UpdateItemInput) }).
		Return(&dynamodb.UpdateItemOutput{Attributes: storedTodo(t, updated)}, nil)

	title := "buy oat milk"
	got, err := r.Update(context.Background(), "t1", model.TodoPatch{
		Title:       &title,
		Description: model.Null[string](),
	})
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", got.Title)
	assert.Nil(t, got.Description)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	require.NotNil(t, upd)
	expr := aws.ToString(upd.UpdateExpression)
	assert.True(t, strings.Contains(expr, "SET"))
	assert.True(t, strings.Contains(expr, "REMOVE"))
	assert.Equal(t, types.ReturnValueAllNew, upd.ReturnValues)

	var names []string
	for _, n := range upd.ExpressionAttributeNames {
		names = append(names, n)
	}
	assert.ElementsMatch(t, []string{"title", "description", "updatedAt", "todoId"}, names)
}

func TestTodoRepo_EmptyPatchIsRead(t *testing.T) {
	api := &mockAPI{}
	r := NewTodoRepository(api, "todos", imageURL)
	api.On("GetItem", mock.Anything, mock.Anything).
		Return(&dynamodb.GetItemOutput{Item: storedTodo(t, sampleTodoItem())}, nil)

	got, err := r.Update(context.Background(), "t1", model.TodoPatch{})
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)
	api.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
}

func TestTodoRepo_ListByOwnerNewestFirst(t *testing.T) {
	api := &mockAPI{}
	r := NewTodoRepository(api, "todos", imageURL)

	newer := sampleTodoItem()
	newer.TodoID = "t2"
	newer.CreatedAt = "2024-05-02T10:00:00.000Z"
	page := []map[string]types.AttributeValue{storedTodo(t, newer), storedTodo(t, sampleTodoItem())}

	api.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return aws.ToString(in.IndexName) == IndexUserID && !aws.ToBool(in.ScanIndexForward)
	})).Return(&dynamodb.QueryOutput{Items: page}, nil).Once()

	got, err := r.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "t2", got[0].ID)
	assert.Equal(t, "t1", got[1].ID)
	api.AssertExpectations(t)
}

func TestTodoRepo_ListByOwnerEmpty(t *testing.T) {
	api := &mockAPI{}
	r := NewTodoRepository(api, "todos", imageURL)
	api.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil)

	got, err := r.ListByOwner(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCategoryRepo_ListOldestFirstAndClearColor(t *testing.T) {
	api := &mockAPI{}
	r := NewCategoryRepository(api, "categories")

	api.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return aws.ToBool(in.ScanIndexForward)
	})).Return(&dynamodb.QueryOutput{}, nil).Once()
	_, err := r.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)

	stored, err := attributevalue.MarshalMap(categoryItem{
		CategoryID: "c1", UserID: "u1", Name: "Work",
		CreatedAt: "2024-05-01T10:00:00.000Z", UpdatedAt: "2024-05-01T11:00:00.000Z",
	})
	require.NoError(t, err)
	var upd *dynamodb.UpdateItemInput
	api.On("UpdateItem", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { upd = args.Get(1).(*dynamodb.UpdateItemInput) }).
		Return(&dynamodb.UpdateItemOutput{Attributes: stored}, nil)

	got, err := r.Update(context.Background(), "c1", model.CategoryPatch{Color: model.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, got.Color)
	assert.Contains(t, aws.ToString(upd.UpdateExpression), "REMOVE")
	api.AssertExpectations(t)
}

func TestUserRepo_ListScansAllPages(t *testing.T) {
	api := &mockAPI{}
	r := NewUserRepository(api, "users")

	u1, err := attributevalue.MarshalMap(userItem{UserID: "u1", Email: "a@x", Name: "A",
		CreatedAt: "2024-05-01T10:00:00.000Z", UpdatedAt: "2024-05-01T10:00:00.000Z"})
	require.NoError(t, err)
	u2, err := attributevalue.MarshalMap(userItem{UserID: "u2", Email: "b@x", Name: "B",
		CreatedAt: "2024-05-01T10:00:00.000Z", UpdatedAt: "2024-05-01T10:00:00.000Z"})
	require.NoError(t, err)

	api.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool { return in.ExclusiveStartKey == nil })).
		Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{u1}, LastEvaluatedKey: stringKey(userKey, "u1")}, nil).Once()
	api.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool { return in.ExclusiveStartKey != nil })).
		Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{u2}}, nil).Once()

	got, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "u2", got[1].ID)
	api.AssertExpectations(t)
}

func TestUserRepo_DeleteIsUnconditional(t *testing.T) {
	api := &mockAPI{}
	r := NewUserRepository(api, "users")
	api.On("DeleteItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.DeleteItemInput) bool {
		return in.ConditionExpression == nil
	})).Return(&dynamodb.DeleteItemOutput{}, nil).Twice()

	require.NoError(t, r.Delete(context.Background(), "u1"))
	require.NoError(t, r.Delete(context.Background(), "u1"))
	api.AssertExpectations(t)
}

func TestEnsureTables_CreatesOnlyMissing(t *testing.T) {
	api := &mockAPI{}
	api.On("DescribeTable", mock.Anything, mock.MatchedBy(func(in *dynamodb.DescribeTableInput) bool {
		return aws.ToString(in.TableName) == "users"
	})).Return(&dynamodb.DescribeTableOutput{}, nil)
	api.On("DescribeTable", mock.Anything, mock.Anything).
		Return(nil, &types.ResourceNotFoundException{Message: aws.String("missing")})

	var created []*dynamodb.CreateTableInput
	api.On("CreateTable", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = append(created, args.Get(1).(*dynamodb.CreateTableInput)) }).
		Return(&dynamodb.CreateTableOutput{}, nil)

	err := EnsureTables(context.Background(), api, Tables{Users: "users", Categories: "categories", Todos: "todos"})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "categories", aws.ToString(created[0].TableName))
	require.Len(t, created[1].GlobalSecondaryIndexes, 1)
	assert.Equal(t, IndexUserID, aws.ToString(created[1].GlobalSecondaryIndexes[0].IndexName))
}
