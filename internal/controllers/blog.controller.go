package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petkey/internal/middleware"
	"petkey/internal/models"
	"petkey/internal/repository"
	"petkey/internal/utils"
)

type BlogController struct {
	repo repository.BlogPostRepository
}

func NewBlogController(repo repository.BlogPostRepository) *BlogController {
	return &BlogController{repo: repo}
}

func (bc *BlogController) presentPost(c *gin.Context, post *models.BlogPost) {
	if post.Author != nil {
		post.AuthorName = post.Author.Name
	}
	post.FeaturedImage = utils.AbsoluteMediaURL(c, post.FeaturedImage)
}

// CreateBlogPost godoc
// @Summary Create a new blog post
// @Description The slug is derived from the title; featured_image accepts a base64 data URI or a URL
// @Tags blog
// @Accept json
// @Produce json
// @Param post body models.BlogPost true "Blog post data"
// @Success 201 {object} map[string]interface{} "Blog post created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /blog [post]
func (bc *BlogController) CreateBlogPost(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// Slug, views and timestamps are server-assigned
	post.ID = 0
	post.Slug = ""
	post.Views = 0

	if utils.IsDataURI(post.FeaturedImage) {
		path, err := utils.SaveDataURI(post.FeaturedImage, "blog")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid featured image",
				"error":   err.Error(),
			})
			return
		}
		post.FeaturedImage = path
	}

	if err := bc.repo.Create(&post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create blog post",
			"error":   err.Error(),
		})
		return
	}

	bc.presentPost(c, &post)
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Blog post created successfully",
		"data":    post,
	})
}

// GetAllBlogPosts godoc
// @Summary Get all blog posts
// @Description Anonymous callers only see published posts. Filters: category, tag, author, search
// @Tags blog
// @Produce json
// @Param category query string false "Category (case-insensitive exact)"
// @Param tag query string false "Tag substring"
// @Param author query int false "Author ID"
// @Param search query string false "Substring over title/content/excerpt/tags/category"
// @Success 200 {object} map[string]interface{} "Blog posts retrieved successfully"
// @Router /blog [get]
func (bc *BlogController) GetAllBlogPosts(c *gin.Context) {
	filter := repository.BlogPostFilter{
		PublishedOnly: !middleware.IsAuthenticated(c),
		Category:      c.Query("category"),
		Tag:           c.Query("tag"),
		Search:        c.Query("search"),
	}
	if author := c.Query("author"); author != "" {
		if id, err := strconv.ParseUint(author, 10, 32); err == nil {
			filter.AuthorID = uint(id)
		}
	}

	posts, err := bc.repo.FindAll(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve blog posts",
			"error":   err.Error(),
		})
		return
	}

	items := make([]models.BlogPostListItem, 0, len(posts))
	for i := range posts {
		bc.presentPost(c, &posts[i])
		items = append(items, posts[i].ListItem())
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Blog posts retrieved successfully",
		"data":    items,
	})
}

// GetBlogPostBySlug godoc
// @Summary Get a blog post by slug
// @Description Each detail fetch increments the post's view counter by one
// @Tags blog
// @Produce json
// @Param slug path string true "Blog post slug"
// @Success 200 {object} map[string]interface{} "Blog post retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Blog post not found"
// @Router /blog/{slug} [get]
func (bc *BlogController) GetBlogPostBySlug(c *gin.Context) {
	post, err := bc.repo.FindBySlug(c.Param("slug"), !middleware.IsAuthenticated(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Blog post not found",
			"error":   "No blog post exists with the provided slug",
		})
		return
	}

	if err := bc.repo.IncrementViews(post.ID); err == nil {
		post.Views++
	}

	bc.presentPost(c, post)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Blog post retrieved successfully",
		"data":    post,
	})
}

// UpdateBlogPost godoc
// @Summary Update a blog post
// @Description Slug and view counter are immutable
// @Tags blog
// @Accept json
// @Produce json
// @Param slug path string true "Blog post slug"
// @Param post body models.BlogPost true "Blog post data"
// @Success 200 {object} map[string]interface{} "Blog post updated successfully"
// @Failure 404 {object} map[string]interface{} "Blog post not found"
// @Router /blog/{slug} [put]
func (bc *BlogController) UpdateBlogPost(c *gin.Context) {
	existing, err := bc.repo.FindBySlug(c.Param("slug"), false)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Blog post not found",
			"error":   "No blog post exists with the provided slug",
		})
		return
	}

	// Bind over a copy of the stored record so partial bodies
	// leave unsupplied fields untouched.
	input := *existing
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	input.ID = existing.ID
	input.Slug = existing.Slug
	input.Views = existing.Views
	input.CreatedAt = existing.CreatedAt
	input.Author = nil

	if utils.IsDataURI(input.FeaturedImage) {
		path, err := utils.SaveDataURI(input.FeaturedImage, "blog")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid featured image",
				"error":   err.Error(),
			})
			return
		}
		input.FeaturedImage = path
	}

	if err := bc.repo.Update(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update blog post",
			"error":   err.Error(),
		})
		return
	}

	bc.presentPost(c, &input)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Blog post updated successfully",
		"data":    input,
	})
}

// DeleteBlogPost godoc
// @Summary Delete a blog post
// @Tags blog
// @Produce json
// @Param slug path string true "Blog post slug"
// @Success 200 {object} map[string]interface{} "Blog post deleted successfully"
// @Failure 404 {object} map[string]interface{} "Blog post not found"
// @Router /blog/{slug} [delete]
func (bc *BlogController) DeleteBlogPost(c *gin.Context) {
	slug := c.Param("slug")
	if _, err := bc.repo.FindBySlug(slug, false); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Blog post not found",
			"error":   "No blog post exists with the provided slug",
		})
		return
	}

	if err := bc.repo.Delete(slug); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete blog post",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Blog post deleted successfully",
		"data":    nil,
	})
}

// GetFeaturedBlogPosts godoc
// @Summary Get featured blog posts
// @Description Top 5 published posts by view count
// @Tags blog
// @Produce json
// @Success 200 {object} map[string]interface{} "Blog posts retrieved successfully"
// @Router /blog/featured [get]
func (bc *BlogController) GetFeaturedBlogPosts(c *gin.Context) {
	posts, err := bc.repo.FindFeatured(5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve blog posts",
			"error":   err.Error(),
		})
		return
	}

	items := make([]models.BlogPostListItem, 0, len(posts))
	for i := range posts {
		bc.presentPost(c, &posts[i])
		items = append(items, posts[i].ListItem())
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Blog posts retrieved successfully",
		"data":    items,
	})
}

// GetBlogCategories godoc
// @Summary Get distinct categories among published posts
// @Tags blog
// @Produce json
// @Success 200 {object} map[string]interface{} "Categories retrieved successfully"
// @Router /blog/categories [get]
func (bc *BlogController) GetBlogCategories(c *gin.Context) {
	categories, err := bc.repo.DistinctCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve categories",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}
