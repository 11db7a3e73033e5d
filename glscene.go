package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mpoletaev/glscene/config"
	"github.com/mpoletaev/glscene/drivers/gldriver"
	"github.com/mpoletaev/glscene/scene"
	"github.com/mpoletaev/glscene/scenefile"
	"github.com/mpoletaev/glscene/utils"
	"github.com/mpoletaev/glscene/web"
)

func init() {
	// GLFW and GL require the main OS thread.
	runtime.LockOSThread()
}

func main() {
	var scenePath, addr string
	var width, height int
	var dump, noflip bool
	flag.StringVar(&scenePath, "scene", "", "Path to YAML scene description")
	flag.StringVar(&addr, "i", "", "Address of inspector server, empty to disable")
	flag.IntVar(&width, "width", 1280, "Window width")
	flag.IntVar(&height, "height", 720, "Window height")
	flag.BoolVar(&dump, "dump", false, "Dump the parsed scene description")
	flag.BoolVar(&noflip, "noflip", false, "Do not flip texture images vertically on load")
	flag.Parse()

	if scenePath == "" {
		log.Fatalf("Provide scene description with -scene")
	}
	config.SetFlipTexturesOnLoad(!noflip)

	doc, err := scenefile.FromFile(scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	if dump {
		utils.Dump(doc)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to init glfw: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(width, height, "glscene: "+scenePath, nil, nil)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		log.Fatalf("Failed to init gl: %v", err)
	}
	log.Printf("GL version: %q", gl.GoStr(gl.GetString(gl.VERSION)))

	shader, err := gldriver.NewShader()
	if err != nil {
		log.Fatalf("Failed to build scene shader: %v", err)
	}
	defer shader.Delete()

	meshes := gldriver.NewMeshes()
	defer meshes.Delete()

	manager := scene.NewManager(shader, gldriver.NewTextures(), meshes, nil)
	defer manager.Teardown()

	if err := manager.PrepareScene(doc); err != nil {
		log.Fatalf("Failed to prepare scene: %v", err)
	}

	if addr != "" {
		go func() {
			if err := web.StartServer(addr, manager, doc); err != nil {
				log.Printf("Inspector server stopped: %v", err)
			}
		}()
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE)

	cameraPos := mgl32.Vec3(doc.Camera.Position)
	cameraTarget := mgl32.Vec3(doc.Camera.Target)
	view := mgl32.LookAtV(cameraPos, cameraTarget, mgl32.Vec3{0, 1, 0})

	for !window.ShouldClose() {
		fbWidth, fbHeight := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		gl.ClearColor(0.1, 0.1, 0.12, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		shader.Use()
		projection := mgl32.Perspective(
			mgl32.DegToRad(doc.Camera.FOVDegrees),
			float32(fbWidth)/float32(fbHeight), 0.1, 1000.0)
		manager.SetProjection(projection)
		manager.SetView(view, cameraPos)

		if err := manager.RenderScene(doc); err != nil {
			log.Fatalf("Render failed: %v", err)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
