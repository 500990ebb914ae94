package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteAbout is the about page route.
	RouteAbout = "/about"
	// RouteCategorySlug is the category listing route pattern.
	RouteCategorySlug = "/category/{slug}"
	// RoutePostID is the single post route pattern.
	RoutePostID = "/post/{id}"
	// RouteHealth is the health check route.
	RouteHealth = "/health"

	// RouteAdmin is the admin panel entry route.
	RouteAdmin = "/admin"
	// RouteAdminLogin is the admin login submission route.
	RouteAdminLogin = "/admin/login"
	// RouteAdminLogout is the admin logout route.
	RouteAdminLogout = "/admin/logout"
	// RouteAdminDashboard is the admin dashboard route.
	RouteAdminDashboard = "/admin/dashboard"
	// RouteAdminNew is the new post form route.
	RouteAdminNew = "/admin/posts/new"
	// RouteAdminPosts is the post creation route.
	RouteAdminPosts = "/admin/posts"
	// RouteAdminPostID is the post edit form route pattern.
	RouteAdminPostID = "/admin/posts/{id}"
	// RouteAdminPostDelete is the post deletion route pattern.
	RouteAdminPostDelete = "/admin/posts/{id}/delete"
	// RouteAdminEditorWrap is the rich-text wrap endpoint.
	RouteAdminEditorWrap = "/admin/editor/wrap"

	// RouteUploads is the uploaded image prefix.
	RouteUploads = "/uploads"
)
