package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/models"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/utils"
	"gorm.io/gorm"
)

type ForumController struct {
	DB *gorm.DB
}

func NewForumController(db *gorm.DB) *ForumController {
	return &ForumController{DB: db}
}

type postWithMeta struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uint      `json:"author_id"`
	Username  string    `json:"username"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// ListPosts returns every forum post with its author's username and its like
// count, newest first.
func (fc *ForumController) ListPosts(c *gin.Context) {
	var posts []postWithMeta
	err := fc.DB.Model(&models.ForumPost{}).
		Select("forum_posts.id, forum_posts.title, forum_posts.content, forum_posts.author_id, forum_posts.created_at, users.username, COUNT(post_likes.id) AS likes").
		Joins("LEFT JOIN users ON users.id = forum_posts.author_id").
		Joins("LEFT JOIN post_likes ON post_likes.post_id = forum_posts.id").
		Group("forum_posts.id, users.username").
		Order("forum_posts.created_at DESC").
		Scan(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (fc *ForumController) CreatePost(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input struct {
		Title   string `json:"title" binding:"required"`
		Content string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := models.ForumPost{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: user.ID,
	}

	if err := fc.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Post created successfully", "post": post})
}

// ToggleLike sets or clears the caller's like on a post. increment=true adds
// the like when absent and is a no-op when it already exists; increment=false
// removes it. The whole sequence runs in one transaction and the unique index
// on (post_id, user_id) absorbs concurrent inserts of the same like.
func (fc *ForumController) ToggleLike(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	postID := c.Param("id")

	var input struct {
		Increment *bool `json:"increment" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The increment field is required and must be a boolean"})
		return
	}

	var post models.ForumPost
	if err := fc.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var likes int64
	err := fc.DB.Transaction(func(tx *gorm.DB) error {
		if *input.Increment {
			var existing models.PostLike
			err := tx.Where("post_id = ? AND user_id = ?", post.ID, user.ID).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				like := models.PostLike{PostID: post.ID, UserID: user.ID}
				if err := tx.Create(&like).Error; err != nil && !isUniqueViolation(err) {
					return err
				}
			} else if err != nil {
				return err
			}
		} else {
			if err := tx.Where("post_id = ? AND user_id = ?", post.ID, user.ID).Delete(&models.PostLike{}).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Count(&likes).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update likes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         post.ID,
		"title":      post.Title,
		"content":    post.Content,
		"author_id":  post.AuthorID,
		"created_at": post.CreatedAt,
		"likes":      likes,
	})
}

// isUniqueViolation reports whether err is a duplicate-key failure. A
// concurrent request inserting the same like row is not an error here.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (fc *ForumController) CreateComment(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	postID := c.Param("id")

	var input struct {
		Content string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	var post models.ForumPost
	if err := fc.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comment := models.Comment{
		Content:  input.Content,
		AuthorID: user.ID,
		PostID:   post.ID,
	}

	if err := fc.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (fc *ForumController) ListComments(c *gin.Context) {
	postID := c.Param("id")

	var comments []struct {
		ID        uint      `json:"id"`
		Content   string    `json:"content"`
		AuthorID  uint      `json:"author_id"`
		Username  string    `json:"username"`
		PostID    uint      `json:"post_id"`
		CreatedAt time.Time `json:"created_at"`
	}
	err := fc.DB.Model(&models.Comment{}).
		Select("comments.id, comments.content, comments.author_id, comments.post_id, comments.created_at, users.username").
		Joins("LEFT JOIN users ON users.id = comments.author_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Scan(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}
