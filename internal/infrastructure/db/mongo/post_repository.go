package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulsewire/social-api/internal/core/domain"
)

const postsCollection = "posts"

// PostRepository persists posts with their comments embedded, mirroring the
// aggregate shape of the domain: a comment never exists outside its post.
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type mongoComment struct {
	ID        primitive.ObjectID `bson:"_id"`
	AuthorID  string             `bson:"author_id"`
	Text      string             `bson:"text"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AuthorID  string             `bson:"author_id"`
	Content   string             `bson:"content"`
	Comments  []mongoComment     `bson:"comments"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (p mongoPost) toDomain() *domain.Post {
	comments := make([]domain.Comment, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, domain.Comment{
			ID:        c.ID.Hex(),
			AuthorID:  c.AuthorID,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return &domain.Post{
		ID:        p.ID.Hex(),
		AuthorID:  p.AuthorID,
		Content:   p.Content,
		Comments:  comments,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPost{
		ID:        primitive.NewObjectID(),
		AuthorID:  post.AuthorID,
		Content:   post.Content,
		Comments:  []mongoComment{},
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return p.toDomain(), nil
}

// FindAll returns every post, newest first.
func (r *PostRepository) FindAll(ctx context.Context) ([]domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoPost
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, *d.toDomain())
	}
	return posts, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// AddComment pushes a new embedded comment and assigns its id.
func (r *PostRepository) AddComment(ctx context.Context, postID string, comment *domain.Comment) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoComment{
		ID:        primitive.NewObjectID(),
		AuthorID:  comment.AuthorID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$push": bson.M{"comments": doc},
		"$set":  bson.M{"updated_at": comment.CreatedAt},
	})
	if err != nil {
		return fmt.Errorf("add comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}

	comment.ID = doc.ID.Hex()
	return nil
}

// UpdateComment rewrites one embedded comment's text in place. Last write
// wins; callers have already checked ownership against a fresh read.
func (r *PostRepository) UpdateComment(ctx context.Context, postID, commentID, text string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return domain.ErrPostNotFound
	}
	cid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "comments._id": cid},
		bson.M{"$set": bson.M{
			"comments.$[elem].text":       text,
			"comments.$[elem].updated_at": at,
			"updated_at":                  at,
		}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"elem._id": cid}},
		}),
	)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if res.MatchedCount == 0 {
		// The comment may have been removed between the caller's ownership
		// read and this write.
		return r.missingCommentErr(ctx, oid)
	}
	return nil
}

func (r *PostRepository) DeleteComment(ctx context.Context, postID, commentID string) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return domain.ErrPostNotFound
	}
	cid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "comments._id": cid},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": cid}}},
	)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return r.missingCommentErr(ctx, oid)
	}
	return nil
}

// missingCommentErr resolves a zero-match comment write to the precise cause:
// the whole post is gone, or just the comment.
func (r *PostRepository) missingCommentErr(ctx context.Context, oid primitive.ObjectID) error {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("resolve missing comment: %w", err)
	}
	if n == 0 {
		return domain.ErrPostNotFound
	}
	return domain.ErrCommentNotFound
}

// EnsureIndexes creates the listing index.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
